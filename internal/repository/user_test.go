//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	apperrors "translationflow/internal/errors"
	"translationflow/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// UserRepositoryTestSuite tests the UserRepository against Postgres
type UserRepositoryTestSuite struct {
	testutils.PostgresSuite
	repo  *UserRepository
	users *testutils.UserFactory
	ctx   context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.PostgresSuite.SetupSuite()
	suite.repo = NewUserRepository(suite.DB)
	suite.users = testutils.NewUserFactory()
	suite.ctx = context.Background()
}

// TestCreateAndLookup tests reading a user back by id and email
func (suite *UserRepositoryTestSuite) TestCreateAndLookup() {
	user := suite.users.WithEmail("ana@example.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	byID, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("ana@example.com", byID.Email)
	suite.Equal(user.PasswordHash, byID.PasswordHash)

	byEmail, err := suite.repo.GetByEmail(suite.ctx, "ana@example.com")
	suite.Require().NoError(err)
	suite.Equal(user.ID, byEmail.ID)
}

// TestCreateDuplicateEmail tests the unique email constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.users.WithEmail("dup@example.com")))

	err := suite.repo.Create(suite.ctx, suite.users.WithEmail("dup@example.com"))
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestNotFound tests lookups of unknown users
func (suite *UserRepositoryTestSuite) TestNotFound() {
	_, err := suite.repo.GetByEmail(suite.ctx, "ghost@example.com")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	_, err = suite.repo.GetByID(suite.ctx, "not-a-uuid")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestUpdate tests that profile edits persist and the email stays fixed
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.users.WithEmail("ana@example.com")
	suite.Require().NoError(suite.repo.Create(suite.ctx, user))

	user.DisplayName = "Ana Lopes"
	user.PasswordHash = "$2a$10$replacedhash"
	user.Email = "ignored@example.com"
	suite.Require().NoError(suite.repo.Update(suite.ctx, user))

	stored, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("Ana Lopes", stored.DisplayName)
	suite.Equal("$2a$10$replacedhash", stored.PasswordHash)
	suite.Equal("ana@example.com", stored.Email)

	suite.ErrorIs(suite.repo.Update(suite.ctx, suite.users.Create()), apperrors.ErrUserNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
