package dummydb

import (
	"github.com/trezcool/eduhub/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) GetStudent() (student.Student, error) {
	repo.db.student.RLock()
	defer repo.db.student.RUnlock()
	return repo.db.student.row, nil
}

func (repo *studentRepository) UpdateStudent(s student.Student) (student.Student, error) {
	repo.db.student.Lock()
	defer repo.db.student.Unlock()
	s.ID = repo.db.student.row.ID
	s.StudentID = repo.db.student.row.StudentID
	repo.db.student.row = s
	return s, nil
}

func (repo *studentRepository) QueryAllAssignments() ([]student.Assignment, error) {
	repo.db.assignments.RLock()
	defer repo.db.assignments.RUnlock()
	all := make([]student.Assignment, 0, len(repo.db.assignments.order))
	for _, id := range repo.db.assignments.order {
		all = append(all, *repo.db.assignments.table[id])
	}
	return all, nil
}

func (repo *studentRepository) GetAssignmentByID(id string) (student.Assignment, error) {
	repo.db.assignments.RLock()
	defer repo.db.assignments.RUnlock()
	a, ok := repo.db.assignments.table[id]
	if !ok {
		return student.Assignment{}, student.ErrAssignmentNotFound
	}
	return *a, nil
}

func (repo *studentRepository) UpdateAssignment(a student.Assignment) (student.Assignment, error) {
	repo.db.assignments.Lock()
	defer repo.db.assignments.Unlock()
	if _, ok := repo.db.assignments.table[a.ID]; !ok {
		return student.Assignment{}, student.ErrAssignmentNotFound
	}
	repo.db.assignments.table[a.ID] = &a
	return a, nil
}

func (repo *studentRepository) QueryAllSchedule() ([]student.ClassSchedule, error) {
	repo.db.schedule.RLock()
	defer repo.db.schedule.RUnlock()
	return append([]student.ClassSchedule(nil), repo.db.schedule.rows...), nil
}

func (repo *studentRepository) QueryAllGrades() ([]student.Grade, error) {
	repo.db.grades.RLock()
	defer repo.db.grades.RUnlock()
	return append([]student.Grade(nil), repo.db.grades.rows...), nil
}

func (repo *studentRepository) QueryAllAnnouncements() ([]student.Announcement, error) {
	repo.db.announcements.RLock()
	defer repo.db.announcements.RUnlock()
	all := make([]student.Announcement, 0, len(repo.db.announcements.order))
	for _, id := range repo.db.announcements.order {
		all = append(all, *repo.db.announcements.table[id])
	}
	return all, nil
}

func (repo *studentRepository) GetAnnouncementByID(id string) (student.Announcement, error) {
	repo.db.announcements.RLock()
	defer repo.db.announcements.RUnlock()
	a, ok := repo.db.announcements.table[id]
	if !ok {
		return student.Announcement{}, student.ErrAnnouncementNotFound
	}
	return *a, nil
}

func (repo *studentRepository) CreateAnnouncement(a student.Announcement) (student.Announcement, error) {
	repo.db.announcements.Lock()
	defer repo.db.announcements.Unlock()
	repo.db.announcements.table[a.ID] = &a
	repo.db.announcements.order = append(repo.db.announcements.order, a.ID)
	return a, nil
}

func (repo *studentRepository) UpdateAnnouncement(a student.Announcement) (student.Announcement, error) {
	repo.db.announcements.Lock()
	defer repo.db.announcements.Unlock()
	if _, ok := repo.db.announcements.table[a.ID]; !ok {
		return student.Announcement{}, student.ErrAnnouncementNotFound
	}
	repo.db.announcements.table[a.ID] = &a
	return a, nil
}
