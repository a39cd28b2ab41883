package shop

const TopicOrderPlaced = "storefront.order.placed"

// Partition key = session id, so events of one cart keep their order.
func PartitionKey(sid SessionID) []byte { return []byte(sid) }
