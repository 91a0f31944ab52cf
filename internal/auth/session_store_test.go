package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"deafso/internal/db/dbtest"
	"deafso/internal/model"
)

func TestSessionStoreLifecycle(t *testing.T) {
	gormDB := dbtest.Open(t)
	store := NewSessionStore(gormDB)
	ctx := context.Background()
	token := "lifecycle-" + time.Now().Format(time.RFC3339Nano)

	require.NoError(t, store.Record(ctx, 1, model.KindStudent, token, time.Now().Add(time.Hour)))

	session, err := store.FindActive(ctx, model.KindStudent, token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), session.PrincipalID)

	_, err = store.FindActive(ctx, model.KindTeacher, token)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	n, err := store.Revoke(ctx, model.KindStudent, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = store.FindActive(ctx, model.KindStudent, token)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	n, err = store.Revoke(ctx, model.KindStudent, token)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSessionStoreSkipsExpiredRows(t *testing.T) {
	gormDB := dbtest.Open(t)
	store := NewSessionStore(gormDB)
	ctx := context.Background()
	token := "expired-" + time.Now().Format(time.RFC3339Nano)

	require.NoError(t, store.Record(ctx, 2, model.KindTeacher, token, time.Now().Add(-time.Minute)))

	_, err := store.FindActive(ctx, model.KindTeacher, token)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, gormDB.Model(&model.Session{}).Where("token = ?", token).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	_, err = store.Revoke(ctx, model.KindTeacher, token)
	require.NoError(t, err)
}
