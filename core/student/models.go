package student

import "time"

// Assignment statuses
const (
	AssignmentPending   = "pending"
	AssignmentSubmitted = "submitted"
	AssignmentLate      = "late"
	AssignmentGraded    = "graded"
)

// Priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Announcement categories
const (
	CategoryAcademic = "academic"
	CategoryEvent    = "event"
	CategoryHoliday  = "holiday"
	CategoryExam     = "exam"
	CategoryGeneral  = "general"
)

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

type (
	Student struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		StudentID string `json:"studentId"`
		Class     string `json:"class"`
		Section   string `json:"section"`
		Avatar    string `json:"avatar,omitempty"`
		Phone     string `json:"phone,omitempty"`
		Address   string `json:"address,omitempty"`
	}

	Assignment struct {
		ID            string     `json:"id"`
		Title         string     `json:"title"`
		Subject       string     `json:"subject"`
		Description   string     `json:"description"`
		DueDate       time.Time  `json:"dueDate"`
		SubmittedDate *time.Time `json:"submittedDate,omitempty"`
		Status        string     `json:"status"`
		MaxMarks      int        `json:"maxMarks"`
		ObtainedMarks *int       `json:"obtainedMarks,omitempty"`
		Priority      string     `json:"priority"`
	}

	ClassSchedule struct {
		ID        string `json:"id"`
		Subject   string `json:"subject"`
		Teacher   string `json:"teacher"`
		Room      string `json:"room"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
		Day       string `json:"day"`
		Color     string `json:"color"`
	}

	Grade struct {
		ID            string    `json:"id"`
		Subject       string    `json:"subject"`
		ExamType      string    `json:"examType"`
		MaxMarks      int       `json:"maxMarks"`
		ObtainedMarks int       `json:"obtainedMarks"`
		Grade         string    `json:"grade"`
		Date          time.Time `json:"date"`
	}

	// GradeSummary aggregates all grades into an overall percentage.
	GradeSummary struct {
		TotalMarks    int     `json:"totalMarks"`
		ObtainedMarks int     `json:"obtainedMarks"`
		Percentage    float64 `json:"percentage"`
	}

	Announcement struct {
		ID       string    `json:"id"`
		Title    string    `json:"title"`
		Content  string    `json:"content"`
		Category string    `json:"category"`
		Date     time.Time `json:"date"`
		Priority string    `json:"priority"`
		IsRead   bool      `json:"isRead"`
	}

	AttendanceRecord struct {
		ID      string    `json:"id"`
		Subject string    `json:"subject"`
		Date    time.Time `json:"date"`
		Status  string    `json:"status"`
	}

	// UpdateProfile carries the student-editable profile fields.
	UpdateProfile struct {
		Name    string `json:"name" validate:"required,max=100"`
		Phone   string `json:"phone" validate:"omitempty,max=30"`
		Address string `json:"address" validate:"omitempty,max=200"`
		Avatar  string `json:"avatar" validate:"omitempty,url"`
	}

	// NewAnnouncement is the payload for publishing an announcement.
	NewAnnouncement struct {
		Title    string `json:"title" validate:"required,max=200"`
		Content  string `json:"content" validate:"required"`
		Category string `json:"category" validate:"required,oneof=academic event holiday exam general"`
		Priority string `json:"priority" validate:"required,oneof=low medium high"`
	}
)
