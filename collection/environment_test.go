package collection

type JSON = map[string]interface{}

func newCollection(items ...JSON) *Collection {
	c := New("test")
	for _, item := range items {
		_, err := c.Insert(item)
		if err != nil {
			panic(err)
		}
	}
	return c
}

func payloads(c *Collection) []string {
	result := []string{}
	c.Traverse(func(row *Row) bool {
		result = append(result, string(row.Payload))
		return true
	})
	return result
}
