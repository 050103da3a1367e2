package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamworld/wms-console/internal/domain/models"
)

// fakeGateway implements warehouse.Client with canned data and switchable
// failures.
type fakeGateway struct {
	items     []models.Item
	listErr   error
	patchErr  error
	patched   map[string]models.ItemPatch
	lastSKU   string
	patchCall int
}

func (f *fakeGateway) ListItems(context.Context) ([]models.Item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeGateway) PatchItem(_ context.Context, sku string, patch models.ItemPatch) (*models.Item, error) {
	f.patchCall++
	f.lastSKU = sku
	if f.patched == nil {
		f.patched = make(map[string]models.ItemPatch)
	}
	f.patched[sku] = patch
	if f.patchErr != nil {
		return nil, f.patchErr
	}
	return &models.Item{SKU: sku}, nil
}

func (f *fakeGateway) ListOrders(context.Context) ([]models.Order, error) {
	return nil, nil
}

func (f *fakeGateway) PatchOrderStatus(context.Context, string, string, models.OrderStatus) (*models.Order, error) {
	return nil, nil
}

func (f *fakeGateway) PatchOrderTracking(context.Context, string, string, models.TrackingUpdate) (*models.Order, error) {
	return nil, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testItems() []models.Item {
	return []models.Item{
		{SKU: "A", Description: "Apple Crate", ItemType: "Produce", Bin: "B1", DSU: "case", Qty: 0, Price: price("10.00")},
		{SKU: "B", Description: "Banana Box", ItemType: "Produce", Bin: "B2", DSU: "box", Qty: 50, Price: price("5.25")},
		{SKU: "C", Description: "Cleaning Kit", ItemType: "Supplies", Bin: "B1", DSU: "each", Qty: 500, Price: price("22.10")},
	}
}

func loadedService(t *testing.T, gw *fakeGateway) *Service {
	t.Helper()
	svc := NewService(gw, nil)
	require.NoError(t, svc.Refresh(context.Background()))
	return svc
}

func TestRefreshFailureKeepsList(t *testing.T) {
	gw := &fakeGateway{items: testItems()}
	svc := loadedService(t, gw)

	gw.listErr = errors.New("boom")
	err := svc.Refresh(context.Background())
	require.Error(t, err)
	assert.Len(t, svc.Items(), 3, "last-known-good list survives a failed refresh")
}

func TestStockFilterScenario(t *testing.T) {
	svc := loadedService(t, &fakeGateway{items: testItems()})

	svc.ToggleStockFilter(models.StockOut)
	require.Equal(t, []string{"A"}, skus(svc.Visible()))

	svc.ToggleStockFilter(models.StockOut)
	svc.ToggleStockFilter(models.StockLow)
	require.Equal(t, []string{"B"}, skus(svc.Visible()))

	svc.ToggleStockFilter(models.StockOut)
	require.Equal(t, []string{"A", "B"}, skus(svc.Visible()))
}

func TestNoStockFilterImposesNoConstraint(t *testing.T) {
	svc := loadedService(t, &fakeGateway{items: testItems()})
	assert.Len(t, svc.Visible(), 3)
}

func TestFiltersCombineWithAnd(t *testing.T) {
	svc := loadedService(t, &fakeGateway{items: testItems()})

	svc.SetSearch("b") // every row matches via description or bin
	svc.SetTypeFilter("Produce")
	svc.SetBinFilter("B2")
	assert.Equal(t, []string{"B"}, skus(svc.Visible()))

	svc.SetBinFilter("")
	svc.SetSearch("zzz")
	assert.Empty(t, svc.Visible())
}

func TestSearchMatchesDescriptionSkuAndBin(t *testing.T) {
	svc := loadedService(t, &fakeGateway{items: testItems()})

	svc.SetSearch("cleaning")
	assert.Equal(t, []string{"C"}, skus(svc.Visible()))

	svc.SetSearch("b2")
	assert.Equal(t, []string{"B"}, skus(svc.Visible()))
}

func TestSortFalsyAlwaysLast(t *testing.T) {
	svc := loadedService(t, &fakeGateway{items: testItems()})

	svc.RequestSort(SortByQty)
	asc := skus(svc.Visible())
	require.Equal(t, "A", asc[len(asc)-1], "zero qty sorts last ascending")
	assert.Equal(t, []string{"B", "C", "A"}, asc)

	svc.RequestSort(SortByQty)
	desc := skus(svc.Visible())
	require.Equal(t, "A", desc[len(desc)-1], "zero qty sorts last descending too")
	assert.Equal(t, []string{"C", "B", "A"}, desc)
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	items := []models.Item{
		{SKU: "X1", ItemType: "Same", Qty: 10, Price: price("1.00")},
		{SKU: "X2", ItemType: "Same", Qty: 10, Price: price("1.00")},
		{SKU: "X3", ItemType: "Same", Qty: 10, Price: price("1.00")},
	}
	svc := loadedService(t, &fakeGateway{items: items})

	svc.RequestSort(SortByType)
	assert.Equal(t, []string{"X1", "X2", "X3"}, skus(svc.Visible()))
}

func TestRequestSortTogglesDirection(t *testing.T) {
	svc := loadedService(t, &fakeGateway{items: testItems()})

	svc.RequestSort(SortBySKU)
	cfg := svc.Sort()
	require.NotNil(t, cfg)
	assert.Equal(t, Ascending, cfg.Direction)

	svc.RequestSort(SortBySKU)
	assert.Equal(t, Descending, svc.Sort().Direction)

	svc.RequestSort(SortByBin)
	assert.Equal(t, Ascending, svc.Sort().Direction)
}

func TestSaveItemRollsBackOnFailure(t *testing.T) {
	gw := &fakeGateway{items: testItems()}
	svc := loadedService(t, gw)
	before := svc.Items()

	gw.patchErr = errors.New("remote rejected")
	edited := before[1]
	edited.Qty = 999

	update := svc.SaveItem(edited)
	require.Equal(t, 999, svc.Items()[1].Qty, "edit is visible before the commit settles")

	err := update.Commit(context.Background())
	require.Error(t, err)
	assert.Equal(t, before, svc.Items(), "exact pre-edit list restored")
}

func TestSaveItemSuccessKeepsEdit(t *testing.T) {
	gw := &fakeGateway{items: testItems()}
	svc := loadedService(t, gw)

	edited := svc.Items()[0]
	edited.Description = "Apple Crate XL"
	edited.Price = price("12.50")

	update := svc.SaveItem(edited)
	require.NoError(t, update.Commit(context.Background()))

	got := svc.Items()[0]
	assert.Equal(t, "Apple Crate XL", got.Description)
	assert.Equal(t, "A", gw.lastSKU)

	patch := gw.patched["A"]
	require.NotNil(t, patch.Price)
	assert.True(t, patch.Price.Equal(price("12.50")))
	require.NotNil(t, patch.Qty)
}

func TestDistinctTypesAndBins(t *testing.T) {
	svc := loadedService(t, &fakeGateway{items: testItems()})

	assert.Equal(t, []string{"Produce", "Supplies"}, svc.ItemTypes())
	assert.Equal(t, []string{"B1", "B2"}, svc.Bins())
}

func TestSummaryCounts(t *testing.T) {
	svc := loadedService(t, &fakeGateway{items: testItems()})

	assert.Equal(t, 550, svc.TotalUnits())
	assert.Equal(t, 3, svc.UniqueSKUs())
	assert.Equal(t, 1, svc.LowStockCount())
	assert.Equal(t, 1, svc.OutOfStockCount())
}

func skus(items []models.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.SKU)
	}
	return out
}
