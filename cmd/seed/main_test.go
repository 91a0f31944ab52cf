package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"deafso/internal/model"
)

type memoryTeachers struct {
	byEmail map[string]*model.Teacher
	nextID  uint
}

func (m *memoryTeachers) Create(_ context.Context, t *model.Teacher) error {
	m.nextID++
	t.ID = m.nextID
	m.byEmail[t.Email] = t
	return nil
}

func (m *memoryTeachers) FindByID(_ context.Context, id uint) (*model.Teacher, error) {
	for _, t := range m.byEmail {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryTeachers) FindByEmail(_ context.Context, email string) (*model.Teacher, error) {
	if t, ok := m.byEmail[email]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type memorySubjects struct {
	upserted []model.Subject
}

func (m *memorySubjects) FindByID(context.Context, uint) (*model.Subject, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *memorySubjects) ListByClass(context.Context, string, string) ([]model.Subject, error) {
	return m.upserted, nil
}

func (m *memorySubjects) ListByTeacher(context.Context, uint) ([]model.Subject, error) {
	return nil, nil
}

func (m *memorySubjects) Upsert(_ context.Context, s *model.Subject) error {
	m.upserted = append(m.upserted, *s)
	return nil
}

func TestSeedTeachersIsIdempotent(t *testing.T) {
	repo := &memoryTeachers{byEmail: map[string]*model.Teacher{}}
	ctx := context.Background()

	first, created, err := seedTeachers(ctx, repo, "hash")
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	require.Len(t, first, 2)
	assert.Equal(t, "hash", first[0].PasswordHash)

	second, created, err := seedTeachers(ctx, repo, "other-hash")
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, first[1].ID, second[1].ID)
	assert.Equal(t, "hash", second[1].PasswordHash)
}

func TestSeedSubjectsAssignsTeachers(t *testing.T) {
	teachers := []*model.Teacher{{ID: 10}, {ID: 20}}
	repo := &memorySubjects{}

	require.NoError(t, seedSubjects(context.Background(), repo, teachers))

	require.Len(t, repo.upserted, 4)
	owners := map[string]uint{}
	for _, s := range repo.upserted {
		assert.Equal(t, "10", s.Standard)
		assert.Equal(t, "A", s.Division)
		owners[s.SubjectName] = s.TeacherID
	}
	assert.Equal(t, uint(10), owners["Mathematics"])
	assert.Equal(t, uint(20), owners["History"])
}
