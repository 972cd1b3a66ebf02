package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	GenerateManagementReport(ctx context.Context, req ManagementReportRequest) (ManagementReport, error)
	RenderManagementReportPDF(ctx context.Context, req ManagementReportRequest) ([]byte, error)
}
