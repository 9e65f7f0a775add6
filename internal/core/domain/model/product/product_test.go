package product_test

import (
	"testing"
	"time"

	"penguinadmin/internal/core/domain/model/kernel"
	"penguinadmin/internal/core/domain/model/product"
	"penguinadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 11, 7, 15, 4, 5, 0, time.UTC)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newTestProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Fresh fish", "caught today", mustMoney(t, "4.50"), stock, true, now)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := newTestProduct(t, 5)

		require.NoError(t, p.Validate())
		assert.Equal(t, "Fresh fish", p.Name())
		assert.Equal(t, 5, p.Stock())
		assert.Equal(t, "4.50", p.Price().String())
		assert.True(t, p.IsActive())
		assert.Equal(t, now, p.CreatedAt())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "  ", "", kernel.Money{}, -1, true, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "stock")
	})
}

func TestProduct_ZeroValueIsInvalid(t *testing.T) {
	var p *product.Product
	require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	require.ErrorIs(t, (&product.Product{}).Validate(), product.ErrProductIsNotConstructed)
}

func TestProduct_DecreaseStock(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("decrements and stamps update time", func(t *testing.T) {
		p := newTestProduct(t, 5)

		require.NoError(t, p.DecreaseStock(2, later))
		assert.Equal(t, 3, p.Stock())
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("exact stock reaches zero", func(t *testing.T) {
		p := newTestProduct(t, 5)

		require.NoError(t, p.DecreaseStock(5, later))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("insufficient stock leaves product untouched", func(t *testing.T) {
		p := newTestProduct(t, 5)

		err := p.DecreaseStock(10, later)

		require.ErrorIs(t, err, product.ErrInsufficientStock)
		var stockErr *product.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Fresh fish", stockErr.ProductName)
		assert.Equal(t, 5, stockErr.Available)
		assert.Equal(t, 10, stockErr.Requested)
		assert.Equal(t, 5, p.Stock())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("non positive quantity is rejected", func(t *testing.T) {
		p := newTestProduct(t, 5)

		require.ErrorIs(t, p.DecreaseStock(0, later), errs.ErrValueIsOutOfRange)
		assert.Equal(t, 5, p.Stock())
	})
}

func TestProduct_Update(t *testing.T) {
	later := now.Add(time.Minute)

	t.Run("replaces editable fields", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.SetImage("/uploads/fish.png", now))

		err := p.Update("Smoked fish", " smoked ", mustMoney(t, "6"), 9, false, later)

		require.NoError(t, err)
		assert.Equal(t, "Smoked fish", p.Name())
		assert.Equal(t, "smoked", p.Description())
		assert.Equal(t, "6.00", p.Price().String())
		assert.Equal(t, 9, p.Stock())
		assert.False(t, p.IsActive())
		assert.Equal(t, "/uploads/fish.png", p.ImagePath())
		assert.Equal(t, later, p.UpdatedAt())
	})

	t.Run("invalid update changes nothing", func(t *testing.T) {
		p := newTestProduct(t, 5)

		err := p.Update("", "", mustMoney(t, "1"), -3, false, later)

		require.Error(t, err)
		assert.Equal(t, "Fresh fish", p.Name())
		assert.Equal(t, 5, p.Stock())
		assert.True(t, p.IsActive())
	})
}

func TestProduct_SetImage(t *testing.T) {
	p := newTestProduct(t, 1)

	require.ErrorIs(t, p.SetImage(" ", now), errs.ErrValueIsRequired)
	require.NoError(t, p.SetImage("/uploads/a.webp", now.Add(time.Second)))
	assert.Equal(t, "/uploads/a.webp", p.ImagePath())
}

func TestRestoreProduct(t *testing.T) {
	id := kernel.NewUUID()
	created := now.Add(-24 * time.Hour)

	p, err := product.RestoreProduct(id, "Krill", "", mustMoney(t, "1.10"), 0, "/uploads/k.png", false, created, now)

	require.NoError(t, err)
	assert.True(t, id.IsEqual(p.ID()))
	assert.Equal(t, created, p.CreatedAt())
	assert.Equal(t, "/uploads/k.png", p.ImagePath())

	_, err = product.RestoreProduct(id, "Krill", "", mustMoney(t, "1.10"), -1, "", false, created, now)
	require.Error(t, err)
}
