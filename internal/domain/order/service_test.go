package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
	"github.com/sbolivar95/lechem-backend/internal/domain/saleproduct"
)

// Mock objects

type passthroughTxManager struct {
	rolledBack bool
}

func (m *passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.rolledBack = true
		return err
	}
	return nil
}

type fixedNumberer struct {
	number string
	calls  int
}

func (n *fixedNumberer) Next(ctx context.Context, orgID id.ID) (string, error) {
	n.calls++
	return n.number, nil
}

type mockRepo struct {
	products map[id.ID]saleproduct.SaleProduct

	insertedOrder *Order
	insertedItems []Item

	orders map[id.ID]*Order

	statusUpdates int
	updateErr     error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		products: make(map[id.ID]saleproduct.SaleProduct),
		orders:   make(map[id.ID]*Order),
	}
}

func (r *mockRepo) addProduct(name, price string) id.ID {
	productID := id.New()
	r.products[productID] = saleproduct.SaleProduct{
		ID:    productID,
		Name:  name,
		Price: types.MustMoney(price),
	}
	return productID
}

func (r *mockRepo) LoadActiveSaleProducts(ctx context.Context, orgID id.ID, ids []id.ID) (map[id.ID]saleproduct.SaleProduct, error) {
	found := make(map[id.ID]saleproduct.SaleProduct)
	for _, productID := range ids {
		if p, ok := r.products[productID]; ok {
			found[productID] = p
		}
	}
	return found, nil
}

func (r *mockRepo) InsertOrder(ctx context.Context, o *Order) error {
	r.insertedOrder = o
	r.orders[o.ID] = o
	return nil
}

func (r *mockRepo) InsertItems(ctx context.Context, items []Item) error {
	r.insertedItems = items
	return nil
}

func (r *mockRepo) List(ctx context.Context, orgID id.ID, status *Status) ([]Order, error) {
	var out []Order
	for _, o := range r.orders {
		if status == nil || o.Status == *status {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *mockRepo) GetByID(ctx context.Context, orgID, orderID id.ID) (*Order, error) {
	o, ok := r.orders[orderID]
	if !ok {
		return nil, apperror.NewNotFound("order", orderID.String())
	}
	cp := *o
	return &cp, nil
}

func (r *mockRepo) GetItems(ctx context.Context, orderID id.ID) ([]Item, error) {
	return r.insertedItems, nil
}

func (r *mockRepo) UpdateStatus(ctx context.Context, orgID, orderID id.ID, status Status, approvedBy *id.ID, approvedAt *time.Time) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	o, ok := r.orders[orderID]
	if !ok || o.Status != StatusPending {
		return apperror.NewNotFound("pending order", orderID.String())
	}
	r.statusUpdates++
	o.Status = status
	o.ApprovedBy = approvedBy
	o.ApprovedAt = approvedAt
	return nil
}

func (r *mockRepo) Delete(ctx context.Context, orgID, orderID id.ID) error {
	delete(r.orders, orderID)
	return nil
}

func newTestService(repo *mockRepo) (*Service, *passthroughTxManager) {
	txm := &passthroughTxManager{}
	return NewService(repo, &fixedNumberer{number: "ORD-2026-00001"}, txm), txm
}

func TestCreate_SnapshotsAndTotal(t *testing.T) {
	repo := newMockRepo()
	breadID := repo.addProduct("Sourdough", "8.50")
	croissantID := repo.addProduct("Croissant", "3.25")
	svc, _ := newTestService(repo)
	orgID := id.New()

	created, err := svc.Create(t.Context(), orgID, CustomerInfo{Name: "Ana"}, []LineRequest{
		{ProductID: breadID, Qty: 2},
		{ProductID: croissantID, Qty: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, "ORD-2026-00001", created.Number)
	require.Len(t, created.Items, 2)

	// 2 × 8.50 + 4 × 3.25 = 30.00
	assert.True(t, created.Total.Equal(types.MustMoney("30.00")))
	assert.Equal(t, "Sourdough", created.Items[0].ProductNameSnapshot)
	assert.True(t, created.Items[0].UnitPriceSnapshot.Equal(types.MustMoney("8.50")))
	assert.True(t, created.Items[0].LineTotal.Equal(types.MustMoney("17.00")))
}

func TestCreate_SnapshotsSurvivePriceChange(t *testing.T) {
	repo := newMockRepo()
	breadID := repo.addProduct("Sourdough", "8.50")
	svc, _ := newTestService(repo)
	orgID := id.New()

	created, err := svc.Create(t.Context(), orgID, CustomerInfo{Name: "Ana"},
		[]LineRequest{{ProductID: breadID, Qty: 2}})
	require.NoError(t, err)

	// Reprice the catalog entry after the order exists.
	p := repo.products[breadID]
	p.Name = "Sourdough XL"
	p.Price = types.MustMoney("99.99")
	repo.products[breadID] = p

	fetched, err := svc.Get(t.Context(), orgID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sourdough", fetched.Items[0].ProductNameSnapshot)
	assert.True(t, fetched.Items[0].UnitPriceSnapshot.Equal(types.MustMoney("8.50")))
	assert.True(t, fetched.Total.Equal(types.MustMoney("17.00")))
}

func TestCreate_UnknownProductAbortsEverything(t *testing.T) {
	repo := newMockRepo()
	breadID := repo.addProduct("Sourdough", "8.50")
	svc, txm := newTestService(repo)

	_, err := svc.Create(t.Context(), id.New(), CustomerInfo{Name: "Ana"}, []LineRequest{
		{ProductID: breadID, Qty: 2},
		{ProductID: id.New(), Qty: 1}, // not in catalog
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.True(t, txm.rolledBack)
	assert.Nil(t, repo.insertedOrder, "nothing may be written when one line fails")
	assert.Nil(t, repo.insertedItems)
}

func TestCreate_Validation(t *testing.T) {
	repo := newMockRepo()
	breadID := repo.addProduct("Sourdough", "8.50")
	svc, _ := newTestService(repo)
	orgID := id.New()

	tests := []struct {
		name     string
		customer CustomerInfo
		lines    []LineRequest
	}{
		{name: "missing customer name", customer: CustomerInfo{Name: "  "},
			lines: []LineRequest{{ProductID: breadID, Qty: 1}}},
		{name: "no lines", customer: CustomerInfo{Name: "Ana"}},
		{name: "zero qty", customer: CustomerInfo{Name: "Ana"},
			lines: []LineRequest{{ProductID: breadID, Qty: 0}}},
		{name: "negative qty", customer: CustomerInfo{Name: "Ana"},
			lines: []LineRequest{{ProductID: breadID, Qty: -3}}},
		{name: "nil product id", customer: CustomerInfo{Name: "Ana"},
			lines: []LineRequest{{Qty: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(t.Context(), orgID, tt.customer, tt.lines)
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
		})
	}
}

func TestUpdateStatus_ApproveStampsActor(t *testing.T) {
	repo := newMockRepo()
	breadID := repo.addProduct("Sourdough", "8.50")
	svc, _ := newTestService(repo)
	orgID := id.New()
	actorID := id.New()

	created, err := svc.Create(t.Context(), orgID, CustomerInfo{Name: "Ana"},
		[]LineRequest{{ProductID: breadID, Qty: 1}})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(t.Context(), orgID, created.ID, StatusApproved, actorID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, actorID, *updated.ApprovedBy)
	assert.NotNil(t, updated.ApprovedAt)
}

func TestUpdateStatus_RejectLeavesApproverEmpty(t *testing.T) {
	repo := newMockRepo()
	breadID := repo.addProduct("Sourdough", "8.50")
	svc, _ := newTestService(repo)
	orgID := id.New()

	created, err := svc.Create(t.Context(), orgID, CustomerInfo{Name: "Ana"},
		[]LineRequest{{ProductID: breadID, Qty: 1}})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(t.Context(), orgID, created.ID, StatusRejected, id.New())
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, updated.Status)
	assert.Nil(t, updated.ApprovedBy)
	assert.Nil(t, updated.ApprovedAt)
}

func TestUpdateStatus_TerminalOrderLooksMissing(t *testing.T) {
	repo := newMockRepo()
	breadID := repo.addProduct("Sourdough", "8.50")
	svc, _ := newTestService(repo)
	orgID := id.New()

	created, err := svc.Create(t.Context(), orgID, CustomerInfo{Name: "Ana"},
		[]LineRequest{{ProductID: breadID, Qty: 1}})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(t.Context(), orgID, created.ID, StatusCancelled, id.New())
	require.NoError(t, err)

	// Cancelled is terminal; a second transition matches no rows.
	_, err = svc.UpdateStatus(t.Context(), orgID, created.ID, StatusApproved, id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateStatus_BackToPendingRejected(t *testing.T) {
	repo := newMockRepo()
	svc, _ := newTestService(repo)

	_, err := svc.UpdateStatus(t.Context(), id.New(), id.New(), StatusPending, id.New())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Zero(t, repo.statusUpdates)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "APPROVED", "REJECTED", "CANCELLED"} {
		got, err := ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, Status(valid), got)
	}

	_, err := ParseStatus("SHIPPED")
	assert.Error(t, err)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}
