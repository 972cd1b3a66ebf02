package settlement

import "context"

type SettlementService interface {
	Settle(ctx context.Context, req CreateSettlementRequest) (SettlementResponse, error)
	GetSettlement(ctx context.Context, id string) (SettlementResponse, error)
	ListSettlements(ctx context.Context, filter ListSettlementsFilter) ([]SettlementResponse, error)
	RenderSettlementPDF(ctx context.Context, id string) ([]byte, error)
}
