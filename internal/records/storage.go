package records

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/NilFoundation/deployer/common"
	"github.com/NilFoundation/deployer/common/logging"
	"github.com/dgraph-io/badger/v4"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// DeploymentsTable keys have the form deployments/<contract>/<unix nanos>/<record id>
const DeploymentsTable = "deployments"

var ErrInvalidRecord = errors.New("invalid deployment record")

type Storage struct {
	db          *badger.DB
	retryRunner common.RetryRunner
	logger      zerolog.Logger
}

func NewStorage(path string, logger zerolog.Logger) (*Storage, error) {
	return newStorage(badger.DefaultOptions(path).WithLogger(nil), logger)
}

func NewStorageInMemory(logger zerolog.Logger) (*Storage, error) {
	return newStorage(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil), logger)
}

func newStorage(opts badger.Options, logger zerolog.Logger) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open records db: %w", err)
	}
	return &Storage{
		db:          db,
		retryRunner: badgerRetryRunner(logger),
		logger:      logger,
	}, nil
}

func badgerRetryRunner(logger zerolog.Logger) common.RetryRunner {
	return common.NewRetryRunner(
		common.RetryConfig{
			ShouldRetry: func(attemptNumber uint32, err error) bool {
				return errors.Is(err, badger.ErrConflict) && common.LimitRetries(5)(attemptNumber, err)
			},
			NextDelay: common.ExponentialDelay(20*time.Millisecond, 100*time.Millisecond),
		},
		clockwork.NewRealClock(),
		logger,
	)
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func makePrefix(contractName string) []byte {
	if contractName == "" {
		return []byte(DeploymentsTable + "/")
	}
	return []byte(DeploymentsTable + "/" + contractName + "/")
}

func makeKey(record *Record) []byte {
	// zero padded so that keys of one contract are ordered by time
	return fmt.Appendf(makePrefix(record.ContractName), "%020d/%s", record.DeployedAt.UnixNano(), record.Id)
}

func (s *Storage) Put(ctx context.Context, record *Record) error {
	if record.ContractName == "" || record.Address == "" {
		return fmt.Errorf("%w: contract name and address are required", ErrInvalidRecord)
	}

	var encoded bytes.Buffer
	if err := gob.NewEncoder(&encoded).Encode(record); err != nil {
		return fmt.Errorf("failed to encode record %s: %w", record.Id, err)
	}

	err := s.retryRunner.Do(ctx, func(context.Context) error {
		return s.db.Update(func(txn *badger.Txn) error {
			return txn.Set(makeKey(record), encoded.Bytes())
		})
	})
	if err != nil {
		return err
	}

	s.logger.Debug().
		Stringer(logging.FieldRecordId, record.Id).
		Str(logging.FieldContractName, record.ContractName).
		Msg("Deployment recorded")
	return nil
}

// List returns records of the contract, newest first. Empty contractName lists all records.
func (s *Storage) List(ctx context.Context, contractName string) ([]*Record, error) {
	var records []*Record
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := makePrefix(contractName)
		iter := txn.NewIterator(badger.IteratorOptions{Prefix: prefix, PrefetchValues: true, PrefetchSize: 100})
		defer iter.Close()

		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			record := new(Record)
			err := iter.Item().Value(func(val []byte) error {
				return gob.NewDecoder(bytes.NewReader(val)).Decode(record)
			})
			if err != nil {
				return fmt.Errorf("failed to decode record %s: %w", iter.Item().Key(), err)
			}
			// "a" must not match records of "a/b.sol:B"
			if contractName != "" && record.ContractName != contractName {
				continue
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(records, func(a, b *Record) int {
		return b.DeployedAt.Compare(a.DeployedAt)
	})
	return records, nil
}
