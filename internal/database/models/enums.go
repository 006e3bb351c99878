package models

// VideoStatus is the processing state of a single video inside a project
type VideoStatus string

const (
	VideoStatusPending    VideoStatus = "pending"
	VideoStatusInProgress VideoStatus = "in_progress"
	VideoStatusCompleted  VideoStatus = "completed"
)

// IsValid checks if the VideoStatus is valid
func (s VideoStatus) IsValid() bool {
	switch s {
	case VideoStatusPending, VideoStatusInProgress, VideoStatusCompleted:
		return true
	}
	return false
}
