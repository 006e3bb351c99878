package models

// Video is a media item translated as part of a project
type Video struct {
	BaseModel                 `bson:",inline"`
	ProjectID                 string      `json:"project_id" gorm:"type:uuid;not null;index" bson:"project_id"`
	Title                     string      `json:"title" gorm:"not null;size:200" bson:"title"`
	Description               string      `json:"description" gorm:"type:text" bson:"description"`
	SourceFileName            string      `json:"source_file_name" gorm:"size:255" bson:"source_file_name"`
	SourceLanguage            string      `json:"source_language" gorm:"size:35" bson:"source_language"`
	TargetLanguage            string      `json:"target_language" gorm:"size:35" bson:"target_language"`
	SourceFileContent         string      `json:"source_file_content,omitempty" gorm:"type:text" bson:"source_file_content,omitempty"`
	TranslatedFileName        string      `json:"translated_file_name,omitempty" gorm:"size:255" bson:"translated_file_name,omitempty"`
	TranslatedFileContent     string      `json:"translated_file_content,omitempty" gorm:"type:text" bson:"translated_file_content,omitempty"`
	OriginalTranslatedContent string      `json:"original_translated_content,omitempty" gorm:"type:text" bson:"original_translated_content,omitempty"`
	VideoURL                  string      `json:"video_url,omitempty" gorm:"size:2000" bson:"video_url,omitempty"`
	AudioURL                  string      `json:"audio_url,omitempty" gorm:"size:2000" bson:"audio_url,omitempty"`
	Status                    VideoStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending'" bson:"status"`
	CreatedBy                 string      `json:"created_by" gorm:"not null;size:64" bson:"created_by"`
}

// TableName returns the table name for Video
func (Video) TableName() string {
	return "videos"
}
