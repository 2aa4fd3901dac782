package usecase

import (
	"context"

	transferdto "github.com/mkraev/fintrack-ledger-service/internal/usecase/dto/transfer"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CheckTransferIntegrity audits every transfer leg of an owner against the
// pairing rules: a leg must point at a partner, the partner must exist and
// point back, and the two amounts must carry opposite signs. The report only
// describes, nothing is repaired.
func (transferUc *DefaultTransferUsecase) CheckTransferIntegrity(ctx context.Context, ownerID string) (*transferdto.IntegrityReport, error) {
	links, err := transferUc.transactionRepo.FindTransferLinks(ctx, ownerID)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	report := &transferdto.IntegrityReport{CheckedTransfers: len(links)}
	for _, link := range links {
		switch {
		case link.LinkedTransactionID == nil:
			report.Violations = append(report.Violations, transferdto.IntegrityViolation{
				TransactionID: link.ID,
				Reason:        transferdto.ViolationMissingLink,
			})
		case link.PartnerID == nil:
			report.Violations = append(report.Violations, transferdto.IntegrityViolation{
				TransactionID:       link.ID,
				LinkedTransactionID: *link.LinkedTransactionID,
				Reason:              transferdto.ViolationDanglingLink,
			})
		case link.PartnerLinkedID == nil || *link.PartnerLinkedID != link.ID:
			report.Violations = append(report.Violations, transferdto.IntegrityViolation{
				TransactionID:       link.ID,
				LinkedTransactionID: *link.LinkedTransactionID,
				Reason:              transferdto.ViolationNotReciprocal,
			})
		case link.PartnerAmount != nil && sameSign(link.Amount, *link.PartnerAmount):
			report.Violations = append(report.Violations, transferdto.IntegrityViolation{
				TransactionID:       link.ID,
				LinkedTransactionID: *link.LinkedTransactionID,
				Reason:              transferdto.ViolationSameSign,
			})
		}
	}

	transferUc.recordIntegrityViolations(len(report.Violations))
	return report, nil
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
