package node

import (
	"sync"

	"github.com/google/uuid"
)

// Version and CommitHash are stamped at build time via -ldflags.
var Version = "development"
var CommitHash = "unknown"

// Node identifies the running application instance.
type Node struct {
	ID         string
	Version    string
	CommitHash string
}

var (
	nodeID     string
	nodeIDOnce sync.Once
)

func GetNodeInfo() *Node {
	return &Node{
		ID:         getNodeID(),
		Version:    Version,
		CommitHash: CommitHash,
	}
}

func getNodeID() string {
	nodeIDOnce.Do(func() {
		nodeID = uuid.NewString()
	})
	return nodeID
}
