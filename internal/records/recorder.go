package records

import (
	"context"

	"github.com/NilFoundation/deployer/internal/deployer"
	"github.com/jonboulle/clockwork"
)

// Recorder stores results of successful deployments.
type Recorder struct {
	storage *Storage
	clock   clockwork.Clock
}

var _ deployer.Recorder = (*Recorder)(nil)

func NewRecorder(storage *Storage, clock clockwork.Clock) *Recorder {
	return &Recorder{storage: storage, clock: clock}
}

func (r *Recorder) Record(ctx context.Context, result *deployer.Result) error {
	return r.storage.Put(ctx, &Record{
		Id:           NewRecordId(),
		ContractName: result.ContractName,
		Address:      result.Address,
		TxHash:       result.TxHash,
		ChainId:      result.ChainId,
		Deployer:     result.Deployer,
		DeployedAt:   r.clock.Now().UTC(),
	})
}
