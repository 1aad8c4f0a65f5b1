package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testSchema = Schema{
	"items": {"id", "owner", "rank", "created_at"},
	"tags":  {"name"},
}

func TestQueryWhereDoesNotAlias(t *testing.T) {
	base := Query{Table: "items"}.Where("owner", "a")
	q1 := base.Where("rank", 1)
	q2 := base.Where("rank", 2)

	assert.Len(t, base.Filters, 1)
	assert.Equal(t, 1, q1.Filters[1].Value)
	assert.Equal(t, 2, q2.Filters[1].Value)
}

func TestQueryCheck(t *testing.T) {
	assert.NoError(t, Query{Table: "items", OrderBy: "rank", Limit: 5}.Where("owner", "a").Check(testSchema))
	assert.Error(t, Query{Table: "nope"}.Check(testSchema))
	assert.Error(t, Query{Table: "items"}.Where("owner; drop table items", 1).Check(testSchema))
	assert.Error(t, Query{Table: "items", OrderBy: "secret"}.Check(testSchema))
	assert.Error(t, Query{Table: "items", Limit: -1}.Check(testSchema))
}

func TestSchemaStamp(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	in := Row{"owner": "a"}

	out := testSchema.Stamp("items", in, "id-1", now)
	assert.Equal(t, "id-1", out["id"])
	assert.Equal(t, now, out["created_at"])
	assert.NotContains(t, in, "id", "input must not be modified")

	kept := testSchema.Stamp("items", Row{"id": "x", "created_at": "then"}, "id-1", now)
	assert.Equal(t, "x", kept["id"])
	assert.Equal(t, "then", kept["created_at"])

	tag := testSchema.Stamp("tags", Row{"name": "n"}, "id-1", now)
	assert.NotContains(t, tag, "id")
	assert.NotContains(t, tag, "created_at")
}
