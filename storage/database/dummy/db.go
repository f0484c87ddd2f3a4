package dummydb

import (
	"sync"

	"github.com/trezcool/eduhub/core/student"
)

type (
	DB struct {
		student       *studentTable
		assignments   *assignmentTable
		schedule      *scheduleTable
		grades        *gradeTable
		announcements *announcementTable
	}

	studentTable struct {
		sync.RWMutex
		row student.Student
	}

	assignmentTable struct {
		sync.RWMutex
		table map[string]*student.Assignment
		order []string
	}

	scheduleTable struct {
		sync.RWMutex
		rows []student.ClassSchedule
	}

	gradeTable struct {
		sync.RWMutex
		rows []student.Grade
	}

	announcementTable struct {
		sync.RWMutex
		table map[string]*student.Announcement
		order []string
	}
)

func Open() (*DB, error) {
	db := &DB{
		student:       &studentTable{},
		assignments:   &assignmentTable{table: make(map[string]*student.Assignment)},
		schedule:      &scheduleTable{},
		grades:        &gradeTable{},
		announcements: &announcementTable{table: make(map[string]*student.Announcement)},
	}
	return db, nil
}

// OpenSeeded opens the DB pre-populated with the portal fixture data.
func OpenSeeded() (*DB, error) {
	db, err := Open()
	if err != nil {
		return nil, err
	}
	db.seed()
	return db, nil
}
