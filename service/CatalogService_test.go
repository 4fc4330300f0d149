package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, base string, parts ...string) {
	t.Helper()
	content := parts[len(parts)-1]
	path := filepath.Join(append([]string{base}, parts[:len(parts)-1]...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newCatalogFixture(t *testing.T) string {
	t.Helper()
	base := t.TempDir()

	writeCatalogFile(t, base, "functions", "startTransaction.xml", `<function>
		<name>startTransaction</name>
		<category><text xml:lang="en">Transactions</text></category>
	</function>`)
	writeCatalogFile(t, base, "functions", "updateTransaction.xml", `<function>
		<name>updateTransaction</name>
		<category><text xml:lang="en">Transactions</text></category>
	</function>`)
	writeCatalogFile(t, base, "functions", "initialize.xml", `<function>
		<name>initialize</name>
		<category><text xml:lang="en">Maintenance</text></category>
	</function>`)
	writeCatalogFile(t, base, "functions", "uncategorized.xml", `<function>
		<name>zHelper</name>
	</function>`)
	writeCatalogFile(t, base, "functions", "broken.xml", `<function><unclosed></function>`)
	writeCatalogFile(t, base, "functions", "wrong-kind.xml", `<enumeration><name>NotAFunction</name></enumeration>`)

	writeCatalogFile(t, base, "enums", "Zeta.xml", `<enumeration><name>Zeta</name></enumeration>`)
	writeCatalogFile(t, base, "enums", "Alpha.xml", `<enumeration><name>Alpha</name></enumeration>`)

	writeCatalogFile(t, base, "exceptions", "ErrorA.xml", `<exception>
		<name>ErrorA</name><severity>High</severity>
	</exception>`)
	writeCatalogFile(t, base, "exceptions", "ErrorB.xml", `<exception>
		<name>ErrorB</name>
	</exception>`)

	writeCatalogFile(t, base, "processes", "CashRegister", "flow", "StartTransaction.xml",
		`<process><name>Start</name></process>`)
	writeCatalogFile(t, base, "processes", "PK01", "DailyClosing.xml",
		`<processChain><chainId>PK-01</chainId><name>Closing</name></processChain>`)

	return base
}

func newCatalogService() *CatalogService {
	return &CatalogService{ProcessService: &ProcessService{}}
}

func TestLoadFunctionsSortsAndDropsMismatches(t *testing.T) {
	base := newCatalogFixture(t)
	functions := newCatalogService().LoadFunctions(base)

	// broken.xml and wrong-kind.xml are silently excluded
	require.Len(t, functions, 4)

	names := make([]string, 0, len(functions))
	for _, fn := range functions {
		names = append(names, fn.Name)
	}
	// (category, name) ascending: Maintenance, Transactions x2, Uncategorized
	assert.Equal(t, []string{"initialize", "startTransaction", "updateTransaction", "zHelper"}, names)
	assert.Equal(t, "Uncategorized", functions[3].Category.Default())
}

func TestLoadEnumsSortedByName(t *testing.T) {
	base := newCatalogFixture(t)
	enums := newCatalogService().LoadEnums(base)

	require.Len(t, enums, 2)
	assert.Equal(t, "Alpha", enums[0].Name)
	assert.Equal(t, "Zeta", enums[1].Name)
}

func TestLoadCategoryAbsentDirectory(t *testing.T) {
	base := t.TempDir()
	svc := newCatalogService()

	assert.Empty(t, svc.LoadFunctions(base))
	assert.NotNil(t, svc.LoadFunctions(base))
	assert.Empty(t, svc.LoadTypes(base))
	assert.Empty(t, svc.LoadExceptions(base))
}

func TestGroupFunctionsByCategoryKeepsFirstSeenOrder(t *testing.T) {
	base := newCatalogFixture(t)
	grouped := newCatalogService().GroupFunctionsByCategory(base)

	assert.Equal(t, []string{"Maintenance", "Transactions", "Uncategorized"}, grouped.Keys())
	assert.Len(t, grouped.Get("Transactions"), 2)

	// marshalled object preserves the key order
	bytes, err := json.Marshal(grouped)
	require.NoError(t, err)
	text := string(bytes)
	assert.Less(t, strings.Index(text, "Maintenance"), strings.Index(text, "Transactions"))
	assert.Less(t, strings.Index(text, "Transactions"), strings.Index(text, "Uncategorized"))
}

func TestGroupExceptionsBySeverity(t *testing.T) {
	base := newCatalogFixture(t)
	grouped := newCatalogService().GroupExceptionsBySeverity(base)

	assert.Len(t, grouped.Get("High"), 1)
	assert.Len(t, grouped.Get("Medium"), 1, "missing severity defaults to Medium")
}

func TestGetFunctionDetail(t *testing.T) {
	base := newCatalogFixture(t)
	svc := newCatalogService()

	detail := svc.GetFunctionDetail(base, "startTransaction")
	require.NotNil(t, detail)
	assert.Equal(t, "startTransaction", detail.Name)

	assert.Nil(t, svc.GetFunctionDetail(base, "doesNotExist"))
}

func TestGetOverview(t *testing.T) {
	base := newCatalogFixture(t)
	overview := newCatalogService().GetOverview(base)

	assert.Equal(t, 4, overview.Functions.Count)
	assert.Equal(t, 2, overview.Functions.Categories["Transactions"])
	assert.Equal(t, 1, overview.Functions.Categories["Uncategorized"])
	assert.Equal(t, 2, overview.Enums.Count)
	assert.Equal(t, 0, overview.Types.Count)
	assert.Equal(t, 2, overview.Exceptions.Count)
	assert.Equal(t, 1, overview.Processes.Count)
	assert.Equal(t, 1, overview.Processes.Actors["CashRegister"])
	assert.Equal(t, 1, overview.ProcessChains.Count)
	assert.Equal(t, 1, overview.ProcessChains.Folders["PK01"])
}

func TestGetOverviewEmptyInstance(t *testing.T) {
	overview := newCatalogService().GetOverview(t.TempDir())

	assert.Equal(t, 0, overview.Functions.Count)
	assert.Equal(t, 0, overview.Processes.Count)
	assert.Equal(t, 0, overview.ProcessChains.Count)
}
