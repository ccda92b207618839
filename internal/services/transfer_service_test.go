package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleet_inventory/internal/models"
	"github.com/fleet_inventory/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

func (f *testFixture) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{
		FullName:     "Test Operator",
		Username:     username,
		PasswordHash: string(hash),
		Active:       true,
	}
	require.NoError(t, f.db.Create(&user).Error)
	return &user
}

func TestCreateTransferAndListing(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	phone := f.createPhone(t, "356938035643809")
	operator := f.createUser(t, "operator1")

	first, err := f.transfers.CreateTransfer(ctx, phone.ID, adminUserID, operator.ID)
	require.NoError(t, err)
	assert.Equal(t, adminUserID, first.SupervisorID)
	assert.Equal(t, operator.ID, first.OperatorID)
	assert.False(t, first.TransferredAt.IsZero())

	time.Sleep(10 * time.Millisecond)
	second, err := f.transfers.CreateTransfer(ctx, phone.ID, adminUserID, operator.ID)
	require.NoError(t, err)

	transfers, err := f.transfers.TransfersForPhone(ctx, phone.ID)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	// Newest handover first.
	assert.Equal(t, second.ID, transfers[0].ID)
	assert.Equal(t, first.ID, transfers[1].ID)
}

func TestCreateTransferUnknownEndpoints(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()
	phone := f.createPhone(t, "356938035643809")

	_, err := f.transfers.CreateTransfer(ctx, 9999, adminUserID, adminUserID)
	assert.ErrorIs(t, err, ErrPhoneNotFound)

	_, err = f.transfers.CreateTransfer(ctx, phone.ID, adminUserID, 9999)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
