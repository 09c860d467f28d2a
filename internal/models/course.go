package models

type Course struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"not null;size:200;index"`
	Description string  `json:"description" gorm:"type:text"`
	SyllabusURL *string `json:"syllabus_url" gorm:"size:500"`

	Modules       []Module      `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Enrollments   []Enrollment  `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	ForumMessages []Forum       `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Assignments   []Assignment  `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Certificates  []Certificate `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

type Module struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"not null;size:200"`
	Description *string `json:"description" gorm:"type:text"`
	CourseID    uint    `json:"course_id" gorm:"not null;index"`

	Lessons []Lesson `json:"-" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
	Quizzes []Quiz   `json:"-" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

type Lesson struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"not null;size:200"`
	Content     string  `json:"content" gorm:"type:text"`
	ContentType *string `json:"content_type" gorm:"size:50"` // video, text, presentation
	ModuleID    uint    `json:"module_id" gorm:"not null;index"`

	Progress []LessonProgress `json:"-" gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`
}

func (Course) TableName() string {
	return "courses"
}

func (Module) TableName() string {
	return "modules"
}

func (Lesson) TableName() string {
	return "lessons"
}
