package docscrape_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Parallel()

	t.Run("header only", func(t *testing.T) {
		t.Parallel()

		table := docscrape.NewTable("Status", "Count")

		assert.Equal(t, docscrape.Row{"Status", "Count"}, table.Header())
		assert.Empty(t, table.Body())
	})

	t.Run("append keeps order", func(t *testing.T) {
		t.Parallel()

		table := docscrape.NewTable("Status", "Count")
		table.Append("Final", "10")
		table.Append("Draft", "3")

		assert.Equal(t, []docscrape.Row{{"Final", "10"}, {"Draft", "3"}}, table.Body())
	})

	t.Run("empty table has no header", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, docscrape.Table(nil).Header())
	})
}

func TestEchoWriter_WriteReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	table := docscrape.NewTable("Documentation link", "Version", "Status")
	table.Append("https://docs.python.org/3.12/", "3.12", "stable")

	err := docscrape.NewEchoWriter(&buf).WriteReport(context.Background(), docscrape.ModeLatestVersions, table)

	require.NoError(t, err)
	assert.Equal(t, "Documentation link Version Status\nhttps://docs.python.org/3.12/ 3.12 stable\n", buf.String())
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, m := range docscrape.Modes() {
		got, err := docscrape.ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := docscrape.ParseMode("crawl")
	assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
}

func TestParseOutput(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "pretty", "file"} {
		got, err := docscrape.ParseOutput(s)
		require.NoError(t, err)
		assert.Equal(t, docscrape.Output(s), got)
	}

	_, err := docscrape.ParseOutput("json")
	assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
}
