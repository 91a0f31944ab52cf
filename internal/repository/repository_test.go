package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"deafso/internal/db/dbtest"
	"deafso/internal/model"
)

func TestStudentRepository(t *testing.T) {
	gormDB := dbtest.Open(t)
	repo := NewStudentRepository(gormDB)
	ctx := context.Background()

	suffix := time.Now().Format("150405.000000")
	division := "Z" + suffix[len(suffix)-3:]
	students := []*model.Student{
		{Fullname: "B Student", Email: "b." + suffix + "@example.local", Mobile: "1234567890", PasswordHash: "x", Standard: "9", Division: division, Rollnumber: "RB-" + suffix},
		{Fullname: "A Student", Email: "a." + suffix + "@example.local", Mobile: "1234567890", PasswordHash: "x", Standard: "9", Division: division, Rollnumber: "RA-" + suffix},
	}
	for _, s := range students {
		require.NoError(t, repo.Create(ctx, s))
	}
	t.Cleanup(func() {
		gormDB.Where("division = ?", division).Delete(&model.Student{})
	})

	found, err := repo.FindByEmailOrRollnumber(ctx, "nobody@example.local", "RA-"+suffix)
	require.NoError(t, err)
	assert.Equal(t, students[1].ID, found.ID)

	list, err := repo.ListByClass(ctx, "9", division)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "RA-"+suffix, list[0].Rollnumber)

	count, err := repo.CountByClass(ctx, "9", division)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	dup := *students[0]
	dup.ID = 0
	dup.Rollnumber = "RC-" + suffix
	err = repo.Create(ctx, &dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	_, err = repo.FindByID(ctx, 0)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSubjectRepository(t *testing.T) {
	gormDB := dbtest.Open(t)
	teachers := NewTeacherRepository(gormDB)
	subjects := NewSubjectRepository(gormDB)
	ctx := context.Background()

	suffix := time.Now().Format("150405.000000")
	teacher := &model.Teacher{Fullname: "T", Email: fmt.Sprintf("t.%s@example.local", suffix), Mobile: "1234567890", PasswordHash: "x"}
	require.NoError(t, teachers.Create(ctx, teacher))
	t.Cleanup(func() {
		gormDB.Where("teacher_id = ?", teacher.ID).Delete(&model.Subject{})
		gormDB.Delete(teacher)
	})

	division := "Y" + suffix[len(suffix)-3:]
	for _, name := range []string{"Science", "Art"} {
		require.NoError(t, subjects.Upsert(ctx, &model.Subject{SubjectName: name, Standard: "11", Division: division, TeacherID: teacher.ID}))
	}
	// second upsert of the same class subject is a no-op
	require.NoError(t, subjects.Upsert(ctx, &model.Subject{SubjectName: "Art", Standard: "11", Division: division, TeacherID: teacher.ID}))

	list, err := subjects.ListByClass(ctx, "11", division)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Art", list[0].SubjectName)
	require.NotNil(t, list[0].Teacher)
	assert.Equal(t, teacher.ID, list[0].Teacher.ID)

	byTeacher, err := subjects.ListByTeacher(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Len(t, byTeacher, 2)

	detail, err := subjects.FindByID(ctx, list[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Science", detail.SubjectName)
	assert.NotNil(t, detail.Teacher)
}
