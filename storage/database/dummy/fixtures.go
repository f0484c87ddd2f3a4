package dummydb

import (
	"time"

	"github.com/trezcool/eduhub/core/student"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

// seed loads the portal fixture tables.
func (db *DB) seed() {
	db.student.row = student.Student{
		ID:        "1",
		Name:      "Alex Johnson",
		Email:     "alex.johnson@school.edu",
		StudentID: "STU2024001",
		Class:     "12th Grade",
		Section:   "A",
		Phone:     "+1 (555) 123-4567",
		Address:   "123 Education Street, Learning City, LC 12345",
	}

	assignments := []student.Assignment{
		{
			ID:          "1",
			Title:       "Physics Lab Report",
			Subject:     "Physics",
			Description: "Complete analysis of the pendulum experiment with calculations and conclusions.",
			DueDate:     date(2024, 12, 20),
			Status:      student.AssignmentPending,
			MaxMarks:    25,
			Priority:    student.PriorityHigh,
		},
		{
			ID:            "2",
			Title:         "Essay on Shakespeare",
			Subject:       "English Literature",
			Description:   "Write a 1500-word essay analyzing themes in Hamlet.",
			DueDate:       date(2024, 12, 22),
			SubmittedDate: timePtr(date(2024, 12, 18)),
			Status:        student.AssignmentSubmitted,
			MaxMarks:      30,
			ObtainedMarks: intPtr(28),
			Priority:      student.PriorityMedium,
		},
		{
			ID:          "3",
			Title:       "Calculus Problem Set 5",
			Subject:     "Mathematics",
			Description: "Complete problems 1-20 from Chapter 8: Integration Techniques.",
			DueDate:     date(2024, 12, 25),
			Status:      student.AssignmentPending,
			MaxMarks:    20,
			Priority:    student.PriorityMedium,
		},
		{
			ID:          "4",
			Title:       "Chemistry Quiz Preparation",
			Subject:     "Chemistry",
			Description: "Study organic chemistry reactions for upcoming quiz.",
			DueDate:     date(2024, 12, 19),
			Status:      student.AssignmentLate,
			MaxMarks:    15,
			Priority:    student.PriorityHigh,
		},
	}
	for i := range assignments {
		a := assignments[i]
		db.assignments.table[a.ID] = &a
		db.assignments.order = append(db.assignments.order, a.ID)
	}

	db.schedule.rows = []student.ClassSchedule{
		{ID: "1", Subject: "Mathematics", Teacher: "Dr. Smith", Room: "201", StartTime: "08:00", EndTime: "09:00", Day: "Monday", Color: "#3b82f6"},
		{ID: "2", Subject: "Physics", Teacher: "Prof. Johnson", Room: "303", StartTime: "09:15", EndTime: "10:15", Day: "Monday", Color: "#ef4444"},
		{ID: "3", Subject: "Chemistry", Teacher: "Dr. Brown", Room: "205", StartTime: "10:30", EndTime: "11:30", Day: "Monday", Color: "#10b981"},
		{ID: "4", Subject: "English Literature", Teacher: "Ms. Davis", Room: "102", StartTime: "12:30", EndTime: "13:30", Day: "Monday", Color: "#8b5cf6"},

		{ID: "5", Subject: "Physics", Teacher: "Prof. Johnson", Room: "303", StartTime: "08:00", EndTime: "09:00", Day: "Tuesday", Color: "#ef4444"},
		{ID: "6", Subject: "Mathematics", Teacher: "Dr. Smith", Room: "201", StartTime: "09:15", EndTime: "10:15", Day: "Tuesday", Color: "#3b82f6"},
		{ID: "7", Subject: "History", Teacher: "Mr. Wilson", Room: "105", StartTime: "10:30", EndTime: "11:30", Day: "Tuesday", Color: "#f59e0b"},
		{ID: "8", Subject: "Physical Education", Teacher: "Coach Taylor", Room: "Gym", StartTime: "12:30", EndTime: "13:30", Day: "Tuesday", Color: "#06b6d4"},

		{ID: "9", Subject: "Chemistry", Teacher: "Dr. Brown", Room: "205", StartTime: "08:00", EndTime: "09:00", Day: "Wednesday", Color: "#10b981"},
		{ID: "10", Subject: "English Literature", Teacher: "Ms. Davis", Room: "102", StartTime: "09:15", EndTime: "10:15", Day: "Wednesday", Color: "#8b5cf6"},
		{ID: "11", Subject: "Mathematics", Teacher: "Dr. Smith", Room: "201", StartTime: "10:30", EndTime: "11:30", Day: "Wednesday", Color: "#3b82f6"},
		{ID: "12", Subject: "Biology", Teacher: "Dr. Garcia", Room: "208", StartTime: "12:30", EndTime: "13:30", Day: "Wednesday", Color: "#84cc16"},

		{ID: "13", Subject: "History", Teacher: "Mr. Wilson", Room: "105", StartTime: "08:00", EndTime: "09:00", Day: "Thursday", Color: "#f59e0b"},
		{ID: "14", Subject: "Physics", Teacher: "Prof. Johnson", Room: "303", StartTime: "09:15", EndTime: "10:15", Day: "Thursday", Color: "#ef4444"},
		{ID: "15", Subject: "Biology", Teacher: "Dr. Garcia", Room: "208", StartTime: "10:30", EndTime: "11:30", Day: "Thursday", Color: "#84cc16"},
		{ID: "16", Subject: "Art", Teacher: "Ms. Anderson", Room: "Art Room", StartTime: "12:30", EndTime: "13:30", Day: "Thursday", Color: "#ec4899"},

		{ID: "17", Subject: "English Literature", Teacher: "Ms. Davis", Room: "102", StartTime: "08:00", EndTime: "09:00", Day: "Friday", Color: "#8b5cf6"},
		{ID: "18", Subject: "Chemistry", Teacher: "Dr. Brown", Room: "205", StartTime: "09:15", EndTime: "10:15", Day: "Friday", Color: "#10b981"},
		{ID: "19", Subject: "Mathematics", Teacher: "Dr. Smith", Room: "201", StartTime: "10:30", EndTime: "11:30", Day: "Friday", Color: "#3b82f6"},
		{ID: "20", Subject: "Computer Science", Teacher: "Mr. Lee", Room: "Lab 1", StartTime: "12:30", EndTime: "13:30", Day: "Friday", Color: "#6366f1"},
	}

	db.grades.rows = []student.Grade{
		{ID: "1", Subject: "Mathematics", ExamType: "Midterm", MaxMarks: 100, ObtainedMarks: 92, Grade: "A", Date: date(2024, 11, 15)},
		{ID: "2", Subject: "Physics", ExamType: "Quiz 1", MaxMarks: 25, ObtainedMarks: 22, Grade: "A-", Date: date(2024, 11, 10)},
		{ID: "3", Subject: "Chemistry", ExamType: "Lab Test", MaxMarks: 30, ObtainedMarks: 28, Grade: "A-", Date: date(2024, 11, 20)},
		{ID: "4", Subject: "English Literature", ExamType: "Essay", MaxMarks: 40, ObtainedMarks: 36, Grade: "A-", Date: date(2024, 11, 12)},
		{ID: "5", Subject: "History", ExamType: "Assignment", MaxMarks: 20, ObtainedMarks: 18, Grade: "A-", Date: date(2024, 11, 18)},
		{ID: "6", Subject: "Biology", ExamType: "Practical", MaxMarks: 35, ObtainedMarks: 33, Grade: "A", Date: date(2024, 11, 22)},
	}

	announcements := []student.Announcement{
		{
			ID:       "1",
			Title:    "Winter Break Schedule",
			Content:  "Classes will be suspended from December 23, 2024, to January 8, 2025. Regular classes will resume on January 9, 2025.",
			Category: student.CategoryHoliday,
			Date:     date(2024, 12, 15),
			Priority: student.PriorityHigh,
		},
		{
			ID:       "2",
			Title:    "Science Fair Registration Open",
			Content:  "Registration for the annual Science Fair is now open. Submit your project proposals by January 15, 2025.",
			Category: student.CategoryEvent,
			Date:     date(2024, 12, 14),
			Priority: student.PriorityMedium,
			IsRead:   true,
		},
		{
			ID:       "3",
			Title:    "Final Examination Schedule",
			Content:  "Final examinations will begin on February 1, 2025. Detailed schedule will be shared next week.",
			Category: student.CategoryExam,
			Date:     date(2024, 12, 13),
			Priority: student.PriorityHigh,
		},
		{
			ID:       "4",
			Title:    "Library New Books Arrival",
			Content:  "New collection of science and literature books have arrived at the library. Visit during lunch hours to explore.",
			Category: student.CategoryGeneral,
			Date:     date(2024, 12, 12),
			Priority: student.PriorityLow,
			IsRead:   true,
		},
	}
	for i := range announcements {
		a := announcements[i]
		db.announcements.table[a.ID] = &a
		db.announcements.order = append(db.announcements.order, a.ID)
	}
}
