package linked_list

//go:generate mockgen -source=logging.go -destination=mocks/logger_mock.go -package=mocks

// Logger is notified when an indexed operation finds the chain shorter than
// the cached length. Implementations are supplied by the user of the list.
type Logger interface {
	// InsertAtChainBroken the chain ended after reached nodes while looking
	// for the predecessor of index. The insert was abandoned.
	InsertAtChainBroken(index, reached uint64)

	// RemoveAtChainBroken the chain ended after reached nodes while looking
	// for the predecessor of index. Nothing was removed.
	RemoveAtChainBroken(index, reached uint64)
}
