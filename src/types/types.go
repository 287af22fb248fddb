// Package types holds the records shared between ingestion, aggregation and rendering.
package types

// RecordKind tells which side of the experiment produced a file.
type RecordKind int

const (
	// KindWrite is the client's batch write-completion record.
	KindWrite RecordKind = iota
	// KindUpdate is a replica's last-update-received record.
	KindUpdate
)

func (k RecordKind) String() string {
	switch k {
	case KindWrite:
		return "write"
	case KindUpdate:
		return "update"
	}
	return "unknown"
}

// Record is one parsed experiment output file.
type Record struct {
	Kind          RecordKind
	ServerID      int // replica id; zero for write records
	ExperimentNum int
	Writes        int
	TimestampMs   int64
	Source        string // file name the record was read from
}

// Point is one scatter point: write-count against replication latency.
type Point struct {
	Writes         int     `json:"writes"`
	LatencySeconds float64 `json:"latency_s"`
}

// Series holds the points of a single replica.
type Series struct {
	ReplicaID int
	Points    []Point
}
