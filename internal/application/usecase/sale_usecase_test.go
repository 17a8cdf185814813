package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/application/usecase"
	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

func newSaleFixture() (*usecase.SaleUseCase, *fakeSaleRepo, *fakeHistoryRepo, *fakeCSV) {
	sales := &fakeSaleRepo{}
	histories := &fakeHistoryRepo{}
	csv := &fakeCSV{}
	tx := &fakeTxRunner{sales: sales, autoSales: &fakeAutoSaleRepo{}, leads: &fakeLeadRepo{}, histories: histories}
	return usecase.NewSaleUseCase(sales, histories, tx, csv), sales, histories, csv
}

func createSaleRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		DateOfSale:         dto.Date{Time: time.Now()},
		CustomerName:       "John Customer",
		PrimaryPhone:       "555-123-4567",
		CampaignType:       "Home warranty 2",
		ConfirmationNumber: "CNF-100",
		PlanName:           "4 Year Plan",
		Address:            "1 Main St",
		Email:              "john@example.com",
		ActivationFee:      decimal.NewFromInt(50),
		PaymentMode:        "Credit Card",
	}
}

func agentActor() *dto.Actor {
	return &dto.Actor{ID: uuid.New().String(), Name: "Jane Agent", Email: "jane@intertech.com", Role: entity.RoleAgent, IsActive: true}
}

func TestSaleCreate_OwnershipFromSession(t *testing.T) {
	uc, sales, _, _ := newSaleFixture()
	actor := agentActor()

	resp, err := uc.Create(context.Background(), actor, createSaleRequest())
	require.NoError(t, err)
	assert.Equal(t, "Sale created successfully", resp.Msg)

	require.Len(t, sales.sales, 1)
	assert.Equal(t, actor.ID, sales.sales[0].AgentID, "owner is always the caller")
	assert.Equal(t, entity.CampaignHomeWarranty, sales.sales[0].Campaign)
	assert.NotEmpty(t, sales.sales[0].ID)
}

func TestSaleCreate_InvalidPayload(t *testing.T) {
	uc, sales, _, _ := newSaleFixture()
	in := createSaleRequest()
	in.CustomerName = ""
	in.PlanName = "Lifetime Plan"

	_, err := uc.Create(context.Background(), agentActor(), in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("customerName"))
	assert.True(t, verr.Has("planName"))
	assert.Empty(t, sales.sales, "nothing stored on validation failure")
}

func TestSaleList_InvalidAgentID(t *testing.T) {
	uc, _, _, _ := newSaleFixture()
	_, err := uc.List(context.Background(), "not-a-uuid", "")
	var badReq *domain.BadRequestError
	require.ErrorAs(t, err, &badReq)
	assert.Equal(t, "Invalid Agent ID", badReq.Msg)
}

func TestSaleList_InvalidWindow(t *testing.T) {
	uc, _, _, _ := newSaleFixture()
	_, err := uc.List(context.Background(), "", "fortnight")
	var badReq *domain.BadRequestError
	require.ErrorAs(t, err, &badReq)
	assert.Equal(t, "Invalid filter type", badReq.Msg)
}

func TestSaleList_WindowAndAgentFilter(t *testing.T) {
	uc, _, _, _ := newSaleFixture()
	actorA := agentActor()
	actorB := agentActor()

	fresh := createSaleRequest()
	_, err := uc.Create(context.Background(), actorA, fresh)
	require.NoError(t, err)

	stale := createSaleRequest()
	stale.DateOfSale = dto.Date{Time: time.Now().Add(-40 * 24 * time.Hour)}
	_, err = uc.Create(context.Background(), actorA, stale)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), actorB, createSaleRequest())
	require.NoError(t, err)

	all, err := uc.List(context.Background(), "", "all")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Count)

	recent, err := uc.List(context.Background(), "", "30days")
	require.NoError(t, err)
	assert.Equal(t, 2, recent.Count)

	mine, err := uc.List(context.Background(), actorA.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, mine.Count)
}

func TestSaleList_AttachesHistories(t *testing.T) {
	uc, sales, histories, _ := newSaleFixture()
	_, err := uc.Create(context.Background(), agentActor(), createSaleRequest())
	require.NoError(t, err)
	saleID := sales.sales[0].ID

	histories.docs = append(histories.docs, &entity.SaleHistory{
		ID: "h-1", Identifier: "SALE-1", SaleID: saleID, Status: entity.StatusUnderReview,
	})

	resp, err := uc.List(context.Background(), "", "")
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	require.Len(t, resp.Sales[0].History, 1)
	assert.Equal(t, entity.StatusUnderReview, resp.Sales[0].History[0].Status)
}

func TestSaleUpdate(t *testing.T) {
	uc, sales, _, _ := newSaleFixture()
	actor := agentActor()
	_, err := uc.Create(context.Background(), actor, createSaleRequest())
	require.NoError(t, err)
	id := sales.sales[0].ID

	newName := "Johnny Customer"
	resp, err := uc.Update(context.Background(), id, dto.UpdateSaleRequest{CustomerName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Sale updated successfully", resp.Msg)
	assert.Equal(t, newName, sales.sales[0].CustomerName)
	assert.Equal(t, actor.ID, sales.sales[0].AgentID, "partial update never reassigns the owner")
	assert.Equal(t, "CNF-100", sales.sales[0].ConfirmationNumber, "untouched fields survive")
}

func TestSaleUpdate_RevalidatesMergedRecord(t *testing.T) {
	uc, sales, _, _ := newSaleFixture()
	_, err := uc.Create(context.Background(), agentActor(), createSaleRequest())
	require.NoError(t, err)

	badPhone := "123"
	_, err = uc.Update(context.Background(), sales.sales[0].ID, dto.UpdateSaleRequest{PrimaryPhone: &badPhone})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "555-123-4567", sales.sales[0].PrimaryPhone, "invalid update leaves the record alone")
}

func TestSaleUpdate_UnknownID(t *testing.T) {
	uc, _, _, _ := newSaleFixture()
	name := "x"
	_, err := uc.Update(context.Background(), "nope", dto.UpdateSaleRequest{CustomerName: &name})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "No item found with id : nope", notFound.Error())
}

func TestSaleDelete_CascadesHistories(t *testing.T) {
	uc, sales, histories, _ := newSaleFixture()
	_, err := uc.Create(context.Background(), agentActor(), createSaleRequest())
	require.NoError(t, err)
	id := sales.sales[0].ID
	histories.docs = append(histories.docs,
		&entity.SaleHistory{ID: "h-1", SaleID: id, Status: entity.StatusPending},
		&entity.SaleHistory{ID: "h-2", SaleID: "other", Status: entity.StatusPending},
	)

	resp, err := uc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Sale deleted successfully", resp.Msg)
	assert.Empty(t, sales.sales)
	require.Len(t, histories.docs, 1, "only the deleted record's documents go")
	assert.Equal(t, "h-2", histories.docs[0].ID)
}

func TestSaleDelete_UnknownID(t *testing.T) {
	uc, _, _, _ := newSaleFixture()
	_, err := uc.Delete(context.Background(), "nope")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSaleExportCSV(t *testing.T) {
	uc, _, _, csv := newSaleFixture()
	_, err := uc.Create(context.Background(), agentActor(), createSaleRequest())
	require.NoError(t, err)

	out, err := uc.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("csv-bytes"), out)

	require.NotEmpty(t, csv.last.Headers)
	assert.Equal(t, []string{
		"dateOfSale", "customerName", "primaryPhone", "confirmationNumber",
		"planName", "email", "agentName", "activationFee", "bankName",
		"chequeOrCardNumber", "cvv", "expiryDate", "merchantName",
		"checkingAccountNumber", "routingNumber", "alternativePhone",
		"campaignType", "address", "paymentMode",
	}, csv.last.Headers)
	require.Len(t, csv.last.Rows, 1)
	assert.Equal(t, "John Customer", csv.last.Rows[0][1])
}

func TestSaleExportCSV_EmptyIs404(t *testing.T) {
	uc, _, _, _ := newSaleFixture()
	_, err := uc.ExportCSV(context.Background())
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "No sales found to export", notFound.Error())
}
