package student_test

import (
	"testing"

	"github.com/trezcool/eduhub/core"
	"github.com/trezcool/eduhub/core/notification"
	"github.com/trezcool/eduhub/core/student"
	dummydb "github.com/trezcool/eduhub/storage/database/dummy"
	testutil "github.com/trezcool/eduhub/tests"
)

type spyDispatcher struct {
	sends []string
	opts  []notification.Options
}

func (d *spyDispatcher) Send(title string, opts notification.Options) notification.Delivery {
	d.sends = append(d.sends, title)
	d.opts = append(d.opts, opts)
	return notification.DeliveryDelivered
}

type spyEmailService struct {
	sent []*core.EmailMessage
}

func (s *spyEmailService) SendMessages(messages ...*core.EmailMessage) {
	s.sent = append(s.sent, messages...)
}

func setup(t *testing.T) (*student.Service, *spyDispatcher, *spyEmailService) {
	t.Helper()
	db, err := dummydb.OpenSeeded()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	dispatcher := &spyDispatcher{}
	mailSvc := &spyEmailService{}
	svc := student.NewService(dummydb.NewStudentRepository(db), mailSvc, dispatcher, testutil.NewLogger())
	return svc, dispatcher, mailSvc
}

func TestService_Profile(t *testing.T) {
	svc, _, _ := setup(t)

	stu, err := svc.Profile()
	if err != nil {
		t.Fatalf("Profile() failed: %v", err)
	}
	if stu.StudentID != "STU2024001" {
		t.Errorf("StudentID = %q, want %q", stu.StudentID, "STU2024001")
	}

	updated, err := svc.UpdateProfile(student.UpdateProfile{Name: "Alex J.", Phone: "+1 (555) 000-0000"})
	if err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}
	if updated.Name != "Alex J." {
		t.Errorf("Name = %q, want %q", updated.Name, "Alex J.")
	}
	if updated.StudentID != stu.StudentID {
		t.Errorf("StudentID changed to %q, want immutable %q", updated.StudentID, stu.StudentID)
	}
}

func TestService_QueryAssignments(t *testing.T) {
	svc, _, _ := setup(t)

	tests := []struct {
		name   string
		status string
		want   int
	}{
		{name: "all", want: 4},
		{name: "pending", status: student.AssignmentPending, want: 2},
		{name: "submitted", status: student.AssignmentSubmitted, want: 1},
		{name: "late", status: student.AssignmentLate, want: 1},
		{name: "graded", status: student.AssignmentGraded, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.QueryAssignments(tt.status)
			if err != nil {
				t.Fatalf("QueryAssignments() failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestService_SubmitAssignment(t *testing.T) {
	svc, _, _ := setup(t)

	a, err := svc.SubmitAssignment("1") // pending fixture
	if err != nil {
		t.Fatalf("SubmitAssignment() failed: %v", err)
	}
	if a.Status != student.AssignmentSubmitted {
		t.Errorf("Status = %q, want %q", a.Status, student.AssignmentSubmitted)
	}
	if a.SubmittedDate == nil {
		t.Error("SubmittedDate is nil, want the submission timestamp")
	}

	if _, err = svc.SubmitAssignment("1"); err != student.ErrAlreadySubmitted {
		t.Errorf("resubmit error = %v, want %v", err, student.ErrAlreadySubmitted)
	}
	if _, err = svc.SubmitAssignment("2"); err != student.ErrAlreadySubmitted {
		t.Errorf("submitted fixture error = %v, want %v", err, student.ErrAlreadySubmitted)
	}
	if _, err = svc.SubmitAssignment("nope"); err != student.ErrAssignmentNotFound {
		t.Errorf("missing id error = %v, want %v", err, student.ErrAssignmentNotFound)
	}
}

func TestService_QuerySchedule(t *testing.T) {
	svc, _, _ := setup(t)

	all, err := svc.QuerySchedule("")
	if err != nil {
		t.Fatalf("QuerySchedule() failed: %v", err)
	}
	if len(all) != 20 {
		t.Errorf("len = %d, want 20", len(all))
	}

	monday, _ := svc.QuerySchedule("Monday")
	if len(monday) != 4 {
		t.Errorf("Monday len = %d, want 4", len(monday))
	}
	for _, cs := range monday {
		if cs.Day != "Monday" {
			t.Errorf("Day = %q, want Monday", cs.Day)
		}
	}
}

func TestService_GradeSummary(t *testing.T) {
	svc, _, _ := setup(t)

	sum, err := svc.GradeSummary()
	if err != nil {
		t.Fatalf("GradeSummary() failed: %v", err)
	}
	if sum.TotalMarks != 250 {
		t.Errorf("TotalMarks = %d, want 250", sum.TotalMarks)
	}
	if sum.ObtainedMarks != 229 {
		t.Errorf("ObtainedMarks = %d, want 229", sum.ObtainedMarks)
	}
	want := 91.6
	if diff := sum.Percentage - want; diff < -0.001 || diff > 0.001 {
		t.Errorf("Percentage = %v, want %v", sum.Percentage, want)
	}
}

func TestService_Announcements(t *testing.T) {
	svc, _, _ := setup(t)

	unread, err := svc.QueryAnnouncements(true)
	if err != nil {
		t.Fatalf("QueryAnnouncements() failed: %v", err)
	}
	if len(unread) != 2 {
		t.Errorf("unread len = %d, want 2", len(unread))
	}

	if _, err = svc.MarkAnnouncementRead("1"); err != nil {
		t.Fatalf("MarkAnnouncementRead() failed: %v", err)
	}
	count, _ := svc.UnreadAnnouncementCount()
	if count != 1 {
		t.Errorf("UnreadAnnouncementCount() = %d, want 1", count)
	}

	if _, err = svc.MarkAnnouncementRead("nope"); err != student.ErrAnnouncementNotFound {
		t.Errorf("missing id error = %v, want %v", err, student.ErrAnnouncementNotFound)
	}
}

func TestService_CreateAnnouncement_alerts(t *testing.T) {
	t.Run("high priority notifies and emails", func(t *testing.T) {
		svc, dispatcher, mailSvc := setup(t)

		a, err := svc.CreateAnnouncement(student.NewAnnouncement{
			Title:    "Exam Hall Change",
			Content:  "The final exam moved to Hall B.",
			Category: student.CategoryExam,
			Priority: student.PriorityHigh,
		})
		if err != nil {
			t.Fatalf("CreateAnnouncement() failed: %v", err)
		}
		if a.ID == "" {
			t.Error("ID is empty, want a generated id")
		}
		if a.IsRead {
			t.Error("IsRead = true, want new announcements unread")
		}

		if len(dispatcher.sends) != 1 || dispatcher.sends[0] != "Exam Hall Change" {
			t.Errorf("dispatcher sends = %v, want the announcement title", dispatcher.sends)
		}
		if len(dispatcher.opts[0].Actions) != 2 {
			t.Errorf("notification actions = %v, want explore and close", dispatcher.opts[0].Actions)
		}
		if len(mailSvc.sent) != 1 {
			t.Fatalf("emails = %d, want 1", len(mailSvc.sent))
		}
		if got := mailSvc.sent[0].To[0].Address; got != "alex.johnson@school.edu" {
			t.Errorf("email to = %q, want the student's address", got)
		}
	})

	t.Run("low priority notifies without email", func(t *testing.T) {
		svc, dispatcher, mailSvc := setup(t)

		_, err := svc.CreateAnnouncement(student.NewAnnouncement{
			Title:    "Chess Club",
			Content:  "Meets Fridays at 4pm.",
			Category: student.CategoryGeneral,
			Priority: student.PriorityLow,
		})
		if err != nil {
			t.Fatalf("CreateAnnouncement() failed: %v", err)
		}
		if len(dispatcher.sends) != 1 {
			t.Errorf("dispatcher sends = %d, want 1", len(dispatcher.sends))
		}
		if len(mailSvc.sent) != 0 {
			t.Errorf("emails = %d, want 0", len(mailSvc.sent))
		}
	})
}
