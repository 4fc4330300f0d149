package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/data"
)

const startTransactionXML = `<function id="startTransaction">
	<name>startTransaction</name>
	<category>
		<text xml:lang="de">Transaktionen</text>
		<text xml:lang="en">Transactions</text>
	</category>
	<description>
		<text xml:lang="de">Startet eine Transaktion.</text>
		<text xml:lang="en">Starts a transaction.</text>
	</description>
	<parameters>
		<parameter name="clientId" type="OCTET STRING" direction="IN" required="true">
			<description><text xml:lang="en">Client identifier.</text></description>
		</parameter>
		<parameter name="transactionNumber" type="INTEGER" direction="OUT">
			<description><text xml:lang="en">Assigned number.</text></description>
		</parameter>
	</parameters>
	<returnValue type="StartTransactionResult">
		<description><text xml:lang="en">Operation outcome.</text></description>
	</returnValue>
	<exceptions>
		<exception>ErrorStartTransactionFailed</exception>
		<exception>ErrorSeApiNotInitialized</exception>
	</exceptions>
	<detailedSteps>
		<step number="3">
			<description><text xml:lang="en">Persist the log message.</text></description>
		</step>
		<step number="1">
			<description><text xml:lang="en">Validate input.</text></description>
			<pseudocode>IF clientId IS EMPTY THEN FAIL</pseudocode>
			<errorCases><errorCase>clientId empty</errorCase></errorCases>
			<standardStep id="SS-01">Input validation</standardStep>
		</step>
		<step number="2">
			<description><text xml:lang="en">Assign transaction number.</text></description>
			<successCases><successCase>number assigned</successCase></successCases>
		</step>
	</detailedSteps>
	<notes><note>Only one open transaction per clientId.</note></notes>
	<mutualExclusions><function>updateTransaction</function></mutualExclusions>
	<transactionLog>
		<logType>TRANSACTION</logType>
		<requirement>SE-API-TL-1</requirement>
		<asn1Structure>TransactionLogMessage ::= SEQUENCE { ... }</asn1Structure>
		<fields>
			<field name="operationType" type="PrintableString">
				<description><text xml:lang="en">Operation name.</text></description>
			</field>
			<field name="clientId" type="OCTET STRING">
				<description><text xml:lang="en">Requesting client.</text></description>
			</field>
		</fields>
	</transactionLog>
</function>`

func TestParseFunctionSummary(t *testing.T) {
	path := writeXML(t, t.TempDir(), "startTransaction.xml", startTransactionXML)

	summary := ParseFunctionSummary(path)
	require.NotNil(t, summary)

	assert.Equal(t, "startTransaction", summary.Id)
	assert.Equal(t, "startTransaction", summary.Name)
	assert.Equal(t, "Transaktionen", summary.Category.Default())
	assert.Equal(t, "Starts a transaction.", summary.Description.Get("en"))
	assert.Equal(t, 3, summary.StepCount)

	require.Len(t, summary.Parameters, 2)
	assert.Equal(t, "clientId", summary.Parameters[0].Name)
	assert.Equal(t, data.DirectionInput, summary.Parameters[0].Direction)
	assert.True(t, summary.Parameters[0].Required)
	assert.Equal(t, data.DirectionOutput, summary.Parameters[1].Direction)
	assert.False(t, summary.Parameters[1].Required)

	require.NotNil(t, summary.ReturnValue)
	assert.Equal(t, "StartTransactionResult", summary.ReturnValue.Type)

	assert.Equal(t, []string{"ErrorStartTransactionFailed", "ErrorSeApiNotInitialized"}, summary.Exceptions)
}

func TestParseFunctionDetailStepOrdering(t *testing.T) {
	path := writeXML(t, t.TempDir(), "startTransaction.xml", startTransactionXML)

	detail := ParseFunctionDetail(path)
	require.NotNil(t, detail)
	require.Len(t, detail.DetailedSteps, 3)

	// declared as 3, 1, 2 in the file
	assert.Equal(t, 1, detail.DetailedSteps[0].Number)
	assert.Equal(t, 2, detail.DetailedSteps[1].Number)
	assert.Equal(t, 3, detail.DetailedSteps[2].Number)

	first := detail.DetailedSteps[0]
	assert.Equal(t, "IF clientId IS EMPTY THEN FAIL", first.Pseudocode)
	assert.Equal(t, []string{"clientId empty"}, first.ErrorCases)
	require.NotNil(t, first.StandardStep)
	assert.Equal(t, "SS-01", first.StandardStep.Id)
	assert.Equal(t, "Input validation", first.StandardStep.Name)
}

func TestParseFunctionDetailLogs(t *testing.T) {
	path := writeXML(t, t.TempDir(), "startTransaction.xml", startTransactionXML)

	detail := ParseFunctionDetail(path)
	require.NotNil(t, detail)

	assert.Empty(t, detail.SystemLogs)
	require.Len(t, detail.TransactionLogs, 1)

	tl := detail.TransactionLogs[0]
	assert.Equal(t, "TRANSACTION", tl.LogType)
	assert.Equal(t, "SE-API-TL-1", tl.Requirement)
	assert.Contains(t, tl.ASN1Structure, "TransactionLogMessage")
	require.Len(t, tl.Fields, 2)
	assert.Equal(t, "operationType", tl.Fields[0].Name)

	assert.Equal(t, []string{"Only one open transaction per clientId."}, detail.Notes)
	assert.Equal(t, []string{"updateTransaction"}, detail.MutualExclusions)
}

func TestParseFunctionIdentifierPrecedence(t *testing.T) {
	dir := t.TempDir()

	withId := writeXML(t, dir, "a.xml", `<function id="explicit"><name>named</name></function>`)
	withName := writeXML(t, dir, "b.xml", `<function><name>named</name></function>`)
	bare := writeXML(t, dir, "foo.xml", `<function><category>X</category></function>`)

	assert.Equal(t, "explicit", ParseFunctionSummary(withId).Id)
	assert.Equal(t, "named", ParseFunctionSummary(withName).Id)
	assert.Equal(t, "foo", ParseFunctionSummary(bare).Id)
}

func TestParseFunctionCategoryDefault(t *testing.T) {
	path := writeXML(t, t.TempDir(), "fn.xml", `<function><name>fn</name></function>`)

	summary := ParseFunctionSummary(path)
	require.NotNil(t, summary)
	assert.Equal(t, "Uncategorized", summary.Category.Default())
}

func TestParseFunctionWrongRootReturnsNil(t *testing.T) {
	path := writeXML(t, t.TempDir(), "x.xml", `<enumeration><name>NotAFunction</name></enumeration>`)
	assert.Nil(t, ParseFunctionSummary(path))
	assert.Nil(t, ParseFunctionDetail(path))
}

func TestParseFunctionLegacyShapes(t *testing.T) {
	path := writeXML(t, t.TempDir(), "legacy.xml", `<interfaceFunction>
		<name>legacyFn</name>
		<germanText>Alte Beschreibung</germanText>
		<parameter name="p1" type="INTEGER" direction="INOUT"/>
	</interfaceFunction>`)

	summary := ParseFunctionSummary(path)
	require.NotNil(t, summary)
	assert.Equal(t, "legacyFn", summary.Id)
	assert.Equal(t, "Alte Beschreibung", summary.Description.Get("de"))
	require.Len(t, summary.Parameters, 1)
	assert.Equal(t, data.DirectionInOut, summary.Parameters[0].Direction)
}

func TestParseFunctionIdempotent(t *testing.T) {
	path := writeXML(t, t.TempDir(), "startTransaction.xml", startTransactionXML)

	first := ParseFunctionDetail(path)
	second := ParseFunctionDetail(path)

	assert.Equal(t, first, second)
}
