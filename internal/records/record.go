package records

import (
	"time"

	"github.com/google/uuid"
)

// RecordId Unique ID of a deployment record
type RecordId uuid.UUID

func NewRecordId() RecordId        { return RecordId(uuid.New()) }
func (id RecordId) String() string { return uuid.UUID(id).String() }
func (id RecordId) Bytes() []byte  { return []byte(id.String()) }

// MarshalText implements the encoding.TextMarshaler interface for RecordId.
func (id RecordId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface for RecordId.
func (id *RecordId) UnmarshalText(data []byte) error {
	uuidValue, err := uuid.Parse(string(data))
	if err != nil {
		return err
	}
	*id = RecordId(uuidValue)
	return nil
}

// Record describes one confirmed deployment.
type Record struct {
	Id           RecordId
	ContractName string
	Address      string
	TxHash       string
	ChainId      uint64
	Deployer     string
	DeployedAt   time.Time
}
