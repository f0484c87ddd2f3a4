package student

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/notification"
)

var (
	// errors
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrAlreadySubmitted     = errors.New("assignment has already been submitted")
)

type (
	Repository interface {
		GetStudent() (Student, error)
		UpdateStudent(s Student) (Student, error)
		QueryAllAssignments() ([]Assignment, error)
		GetAssignmentByID(id string) (Assignment, error)
		UpdateAssignment(a Assignment) (Assignment, error)
		QueryAllSchedule() ([]ClassSchedule, error)
		QueryAllGrades() ([]Grade, error)
		QueryAllAnnouncements() ([]Announcement, error)
		GetAnnouncementByID(id string) (Announcement, error)
		CreateAnnouncement(a Announcement) (Announcement, error)
		UpdateAnnouncement(a Announcement) (Announcement, error)
	}

	// Dispatcher sends portal notifications; delivery is best-effort.
	Dispatcher interface {
		Send(title string, opts notification.Options) notification.Delivery
	}

	Service struct {
		repo       Repository
		mailSvc    core.EmailService
		dispatcher Dispatcher
		logger     core.Logger
	}
)

func NewService(repo Repository, mailSvc core.EmailService, dispatcher Dispatcher, logger core.Logger) *Service {
	return &Service{
		repo:       repo,
		mailSvc:    mailSvc,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (svc *Service) Profile() (Student, error) {
	return svc.repo.GetStudent()
}

func (svc *Service) UpdateProfile(up UpdateProfile) (Student, error) {
	stu, err := svc.repo.GetStudent()
	if err != nil {
		return Student{}, err
	}
	stu.Name = up.Name
	stu.Phone = up.Phone
	stu.Address = up.Address
	stu.Avatar = up.Avatar
	return svc.repo.UpdateStudent(stu)
}

// QueryAssignments returns all assignments, optionally filtered by status.
func (svc *Service) QueryAssignments(status string) ([]Assignment, error) {
	all, err := svc.repo.QueryAllAssignments()
	if err != nil || status == "" {
		return all, err
	}
	filtered := make([]Assignment, 0, len(all))
	for _, a := range all {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// SubmitAssignment marks a pending or late assignment as submitted.
func (svc *Service) SubmitAssignment(id string) (Assignment, error) {
	a, err := svc.repo.GetAssignmentByID(id)
	if err != nil {
		return Assignment{}, err
	}
	if !(a.Status == AssignmentPending || a.Status == AssignmentLate) {
		return Assignment{}, ErrAlreadySubmitted
	}
	now := time.Now().UTC()
	a.Status = AssignmentSubmitted
	a.SubmittedDate = &now
	return svc.repo.UpdateAssignment(a)
}

// QuerySchedule returns the class schedule, optionally filtered by day.
func (svc *Service) QuerySchedule(day string) ([]ClassSchedule, error) {
	all, err := svc.repo.QueryAllSchedule()
	if err != nil || day == "" {
		return all, err
	}
	filtered := make([]ClassSchedule, 0, len(all))
	for _, cs := range all {
		if cs.Day == day {
			filtered = append(filtered, cs)
		}
	}
	return filtered, nil
}

func (svc *Service) QueryGrades() ([]Grade, error) {
	return svc.repo.QueryAllGrades()
}

func (svc *Service) GradeSummary() (GradeSummary, error) {
	grades, err := svc.repo.QueryAllGrades()
	if err != nil {
		return GradeSummary{}, err
	}
	var sum GradeSummary
	for _, g := range grades {
		sum.TotalMarks += g.MaxMarks
		sum.ObtainedMarks += g.ObtainedMarks
	}
	if sum.TotalMarks > 0 {
		sum.Percentage = float64(sum.ObtainedMarks) / float64(sum.TotalMarks) * 100
	}
	return sum, nil
}

// QueryAnnouncements returns all announcements, optionally unread ones only.
func (svc *Service) QueryAnnouncements(unreadOnly bool) ([]Announcement, error) {
	all, err := svc.repo.QueryAllAnnouncements()
	if err != nil || !unreadOnly {
		return all, err
	}
	filtered := make([]Announcement, 0, len(all))
	for _, a := range all {
		if !a.IsRead {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

func (svc *Service) UnreadAnnouncementCount() (int, error) {
	all, err := svc.repo.QueryAllAnnouncements()
	if err != nil {
		return 0, err
	}
	var count int
	for _, a := range all {
		if !a.IsRead {
			count++
		}
	}
	return count, nil
}

func (svc *Service) MarkAnnouncementRead(id string) (Announcement, error) {
	a, err := svc.repo.GetAnnouncementByID(id)
	if err != nil {
		return Announcement{}, err
	}
	if a.IsRead {
		return a, nil
	}
	a.IsRead = true
	return svc.repo.UpdateAnnouncement(a)
}

// CreateAnnouncement publishes an announcement and alerts the student:
// a portal notification for every announcement, plus an email for
// high-priority ones. Alerts are best-effort and never fail the publish.
func (svc *Service) CreateAnnouncement(na NewAnnouncement) (Announcement, error) {
	a := Announcement{
		ID:       uuid.New().String(),
		Title:    na.Title,
		Content:  na.Content,
		Category: na.Category,
		Date:     time.Now().UTC(),
		Priority: na.Priority,
	}
	a, err := svc.repo.CreateAnnouncement(a)
	if err != nil {
		return Announcement{}, err
	}
	svc.alert(a)
	return a, nil
}

func (svc *Service) alert(a Announcement) {
	if svc.dispatcher != nil {
		svc.dispatcher.Send(a.Title, notification.Options{
			Body: a.Content,
			Actions: []notification.Action{
				{Action: notification.ActionExplore, Title: "View Details"},
				{Action: notification.ActionClose, Title: "Close"},
			},
		})
	}

	if a.Priority == PriorityHigh && svc.mailSvc != nil {
		stu, err := svc.repo.GetStudent()
		if err != nil {
			svc.logger.Error("looking up student for announcement email: "+err.Error(), err)
			return
		}
		svc.mailSvc.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Name: stu.Name, Address: stu.Email}},
			Subject: a.Title,
			BodyStr: a.Content,
		})
	}
}
