package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgError(t *testing.T) {
	t.Parallel()

	err := ArgError("args.Name", "Name is required")
	assert.True(t, IsArgError(err))
	assert.Contains(t, err.Error(), "args.Name")

	assert.True(t, IsArgError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsArgError(ErrNotFound))
	assert.False(t, IsArgError(errors.New("plain")))
	assert.False(t, IsArgError(nil))
}

func TestDeclareAccessRightArgs_Validate(t *testing.T) {
	t.Parallel()

	valid := DeclareAccessRightArgs{
		OperationKey:     "api.admin.coupon.destroy",
		ShortKey:         "coupon_delete",
		ShortDescription: "Delete coupon",
		Details:          "Deletes the coupon permanently.",
	}
	assert.NoError(t, valid.Validate())

	t.Run("bad operation key", func(t *testing.T) {
		t.Parallel()
		args := valid
		args.OperationKey = "CouponDelete"
		assert.Error(t, args.Validate())
	})

	t.Run("bad short key", func(t *testing.T) {
		t.Parallel()
		args := valid
		args.ShortKey = "Coupon-Delete"
		assert.Error(t, args.Validate())
	})

	t.Run("short description too short", func(t *testing.T) {
		t.Parallel()
		args := valid
		args.ShortDescription = "abc"
		assert.Error(t, args.Validate())
	})

	t.Run("details may be empty", func(t *testing.T) {
		t.Parallel()
		args := valid
		args.Details = ""
		assert.NoError(t, args.Validate())
	})

	t.Run("details too short when present", func(t *testing.T) {
		t.Parallel()
		args := valid
		args.Details = "too short"
		assert.Error(t, args.Validate())
	})
}

func TestCreateRoleArgs_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateRoleArgs{Name: "Salesperson", Description: "Day-to-day operations."}
	assert.NoError(t, valid.Validate())

	t.Run("name too short", func(t *testing.T) {
		t.Parallel()
		args := valid
		args.Name = "Ops"
		assert.Error(t, args.Validate())
	})

	t.Run("description required", func(t *testing.T) {
		t.Parallel()
		args := valid
		args.Description = ""
		assert.Error(t, args.Validate())
	})
}

func TestCreateUserArgs_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateUserArgs{Name: "s-tanaka"}
	assert.NoError(t, valid.Validate())

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()
		args := valid
		args.Name = "田中"
		assert.Error(t, args.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		args := valid
		args.Name = ""
		assert.Error(t, args.Validate())
	})
}
