package right

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citrusworks/shopadmin/utils/validator"
)

func TestParseKey(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		k, err := ParseKey("api.admin.coupon.destroy")
		require.NoError(t, err)
		assert.Equal(t, CouponDestroy, k)
	})

	cases := map[string]string{
		"empty":              "",
		"single segment":     "coupon",
		"uppercase head":     "Api.admin.coupon.index",
		"trailing dot":       "api.admin.coupon.",
		"digit segment head": "api.admin.1coupon.index",
		"too short":          "a.b",
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseKey(s)
			assert.Error(t, err)
		})
	}
}

func TestKey_IsDestructive(t *testing.T) {
	t.Parallel()

	assert.True(t, CouponDestroy.IsDestructive())
	assert.True(t, ProductForceDestroy.IsDestructive())
	assert.False(t, CouponIndex.IsDestructive())
	assert.False(t, CouponUpdate.IsDestructive())
	// destroyはセグメントとして一致しなければならない
	assert.False(t, Key("api.admin.coupon.undestroy").IsDestructive())
}

func TestDefinitions(t *testing.T) {
	t.Parallel()

	defs := Definitions()
	require.NotEmpty(t, defs)

	operationKeys := map[Key]bool{}
	shortKeys := map[string]bool{}
	for _, d := range defs {
		assert.False(t, operationKeys[d.OperationKey], "duplicated operation key: %s", d.OperationKey)
		operationKeys[d.OperationKey] = true
		assert.False(t, shortKeys[d.ShortKey], "duplicated short key: %s", d.ShortKey)
		shortKeys[d.ShortKey] = true

		_, err := ParseKey(d.OperationKey.Name())
		assert.NoError(t, err, d.OperationKey)
		assert.NoError(t, validator.ValidateVar(d.ShortKey, validator.ShortKeyRuleRequired...), d.ShortKey)
		assert.NoError(t, validator.ValidateVar(d.ShortDescription, validator.ShortDescriptionRuleRequired...), d.OperationKey)
		assert.NoError(t, validator.ValidateVar(d.Details, validator.DetailsRule...), d.OperationKey)
	}

	assert.Len(t, List(), len(defs))
}
