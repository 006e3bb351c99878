package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"translationflow/internal/config"
	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"
	"translationflow/internal/language"
	"translationflow/internal/repository"
	"translationflow/internal/repository/backend"
	"translationflow/internal/workflow"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Simple structures that directly match the seed files
type UserData struct {
	Email       string `yaml:"email"`
	DisplayName string `yaml:"display_name"`
	Password    string `yaml:"password"`
}

type VideoData struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	SourceFileName string `yaml:"source_file_name"`
	TargetLanguage string `yaml:"target_language"`
	VideoURL       string `yaml:"video_url,omitempty"`
	Status         string `yaml:"status,omitempty"`
}

type ProjectData struct {
	Name            string            `yaml:"name"`
	Description     string            `yaml:"description"`
	OwnerEmail      string            `yaml:"owner_email"`
	SourceLanguage  string            `yaml:"source_language"`
	TargetLanguages []string          `yaml:"target_languages"`
	Phases          map[string]string `yaml:"phases,omitempty"`
	Videos          []VideoData       `yaml:"videos,omitempty"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := openWithRetry(ctx, cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to open repository backend: %v", err)
	}
	defer store.Close()

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	if err := loadDataFromYAMLFiles(ctx, store.Repos, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// openWithRetry waits for a freshly started database container
func openWithRetry(ctx context.Context, cfg *config.Config, maxAttempts int, delay time.Duration) (*backend.Backend, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		store, err := backend.Open(ctx, cfg)
		if err == nil {
			return store, nil
		}
		if apperrors.IsConfiguration(err) {
			return nil, err
		}
		lastErr = err
		log.Printf("Backend not ready (attempt %d/%d): %v", attempt, maxAttempts, err)
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("giving up after %d attempts: %w", maxAttempts, lastErr)
}

func loadDataFromYAMLFiles(ctx context.Context, repos *repository.Repositories, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	userMap := make(map[string]*models.User)
	created := 0
	for _, data := range users {
		user, isNew, err := createUser(ctx, repos.Users, data)
		if err != nil {
			return fmt.Errorf("user %s: %w", data.Email, err)
		}
		if isNew {
			created++
		}
		userMap[user.Email] = user
	}
	log.Printf("Users: %d loaded, %d created", len(users), created)

	created, videos := 0, 0
	for _, data := range projects {
		owner, ok := userMap[strings.ToLower(strings.TrimSpace(data.OwnerEmail))]
		if !ok {
			return fmt.Errorf("project %q: unknown owner %s", data.Name, data.OwnerEmail)
		}
		project, isNew, err := createProject(ctx, repos.Projects, data, owner)
		if err != nil {
			return fmt.Errorf("project %q: %w", data.Name, err)
		}
		if !isNew {
			continue
		}
		created++
		for _, v := range data.Videos {
			if err := createVideo(ctx, repos.Videos, v, project); err != nil {
				return fmt.Errorf("project %q video %q: %w", data.Name, v.Title, err)
			}
			videos++
		}
	}
	log.Printf("Projects: %d loaded, %d created with %d videos", len(projects), created, videos)
	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var all []UserData
	err := walkYAML(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Users...)
		return nil
	})
	return all, err
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var all []ProjectData
	err := walkYAML(dataDir, "projects", func(data []byte) error {
		var file ProjectsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Projects...)
		return nil
	})
	return all, err
}

func walkYAML(dataDir, kind string, decode func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := decode(data); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})
}

// createUser returns the existing user when the email is already registered
func createUser(ctx context.Context, users repository.UserRepositoryInterface, data UserData) (*models.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))
	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}
	user := &models.User{
		Email:        email,
		DisplayName:  data.DisplayName,
		PasswordHash: string(hash),
	}
	user.EnsureID()
	user.Touch(time.Now())
	if err := users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// createProject skips projects the owner already has under the same name
func createProject(ctx context.Context, projects repository.ProjectRepositoryInterface, data ProjectData, owner *models.User) (*models.Project, bool, error) {
	existing, err := projects.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, false, err
	}
	for i := range existing {
		if existing[i].Name == data.Name {
			return &existing[i], false, nil
		}
	}

	source := language.Normalize(data.SourceLanguage)
	if !language.IsValid(source) {
		return nil, false, fmt.Errorf("unsupported source language %q", data.SourceLanguage)
	}
	targets := language.NormalizeList(data.TargetLanguages)
	for _, t := range targets {
		if !language.IsValid(t) || t == source {
			return nil, false, fmt.Errorf("invalid target language %q", t)
		}
	}

	state, err := seedState(data.Phases)
	if err != nil {
		return nil, false, err
	}

	project := &models.Project{
		Name:            data.Name,
		Description:     data.Description,
		SourceLanguage:  source,
		TargetLanguages: targets,
		CreatedBy:       owner.ID,
	}
	project.ApplyState(state)
	project.EnsureID()
	project.Touch(time.Now())
	if err := projects.Create(ctx, project); err != nil {
		return nil, false, err
	}
	return project, true, nil
}

// seedState applies the listed phase statuses in workflow order so the
// current phase ends on the last phase put in progress
func seedState(phases map[string]string) (workflow.State, error) {
	state := workflow.NewState()
	parsed := make(map[workflow.Phase]workflow.PhaseStatus, len(phases))
	for key, value := range phases {
		phase, err := workflow.ParsePhase(key)
		if err != nil {
			return state, err
		}
		status, err := workflow.ParseStatus(value)
		if err != nil {
			return state, fmt.Errorf("phase %s: %w", key, err)
		}
		parsed[phase] = status
	}
	for _, phase := range workflow.Sequence() {
		if status, ok := parsed[phase]; ok {
			state = workflow.Transition(state, phase, status)
		}
	}
	return state, nil
}

func createVideo(ctx context.Context, videos repository.VideoRepositoryInterface, data VideoData, project *models.Project) error {
	status := models.VideoStatus(strings.ToLower(data.Status))
	if status == "" {
		status = models.VideoStatusPending
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid status %q", data.Status)
	}
	target := language.Normalize(data.TargetLanguage)
	if target == "" && len(project.TargetLanguages) > 0 {
		target = project.TargetLanguages[0]
	}

	video := &models.Video{
		ProjectID:      project.ID,
		Title:          data.Title,
		Description:    data.Description,
		SourceFileName: data.SourceFileName,
		SourceLanguage: project.SourceLanguage,
		TargetLanguage: target,
		VideoURL:       data.VideoURL,
		Status:         status,
		CreatedBy:      project.CreatedBy,
	}
	video.EnsureID()
	video.Touch(time.Now())
	return videos.Create(ctx, video)
}
