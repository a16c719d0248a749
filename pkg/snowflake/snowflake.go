package snowflake

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	// 多实例部署时通过 NODE_ID 区分节点，默认 1
	id := int64(1)
	if v, err := strconv.ParseInt(os.Getenv("NODE_ID"), 10, 64); err == nil {
		id = v
	}
	n, err := snowflake.NewNode(id)
	if err != nil {
		n, _ = snowflake.NewNode(1)
	}
	node = n
}

// GenRequestID 请求链路 ID
func GenRequestID() string {
	return node.Generate().Base58()
}
