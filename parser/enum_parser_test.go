package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seLifecycleXML = `<enumeration id="SeLifecycleState">
	<name>SeLifecycleState</name>
	<category><text xml:lang="en">Lifecycle</text></category>
	<description><text xml:lang="en">States of the secure element.</text></description>
	<values>
		<value>
			<name>notInitialized</name>
			<value>0</value>
			<hexValue>0x00</hexValue>
			<description><text xml:lang="en">Factory state.</text></description>
		</value>
		<value>
			<name>active</name>
			<value>1</value>
			<hexValue>0x01</hexValue>
			<description><text xml:lang="en">Ready for transactions.</text></description>
		</value>
		<value deprecated="true">
			<name>suspended</name>
			<value>2</value>
			<since>1.0.1</since>
			<description><text xml:lang="en">No longer issued.</text></description>
		</value>
	</values>
	<typeInfo>
		<encoding>ENUMERATED</encoding>
		<typeNames>
			<typeName><language>java</language><name>SEState</name></typeName>
			<typeName><language>asn1</language><name>SE-State</name></typeName>
		</typeNames>
	</typeInfo>
	<constraints><constraint>Value transitions are monotonic.</constraint></constraints>
	<relatedEnumerations><enumeration>UpdateVariants</enumeration></relatedEnumerations>
	<version>1.0.1</version>
</enumeration>`

func TestParseEnumSummary(t *testing.T) {
	path := writeXML(t, t.TempDir(), "SeLifecycleState.xml", seLifecycleXML)

	summary := ParseEnumSummary(path)
	require.NotNil(t, summary)

	assert.Equal(t, "SeLifecycleState", summary.Id)
	assert.Equal(t, "Lifecycle", summary.Category.Default())
	require.Len(t, summary.Values, 3)

	assert.Equal(t, "notInitialized", summary.Values[0].Name)
	assert.Equal(t, 0, summary.Values[0].Value)
	assert.Equal(t, "0x00", summary.Values[0].HexValue)

	assert.True(t, summary.Values[2].Deprecated)
	assert.Equal(t, "1.0.1", summary.Values[2].Since)
}

func TestParseEnumDetail(t *testing.T) {
	path := writeXML(t, t.TempDir(), "SeLifecycleState.xml", seLifecycleXML)

	detail := ParseEnumDetail(path)
	require.NotNil(t, detail)

	require.NotNil(t, detail.TypeInfo)
	assert.Equal(t, "ENUMERATED", detail.TypeInfo.Encoding)
	assert.Equal(t, "SEState", detail.TypeInfo.TypeNames["java"])
	assert.Equal(t, "SE-State", detail.TypeInfo.TypeNames["asn1"])

	assert.Equal(t, []string{"Value transitions are monotonic."}, detail.Constraints)
	assert.Equal(t, []string{"UpdateVariants"}, detail.RelatedEnums)
	assert.Equal(t, "1.0.1", detail.Version)
}

func TestParseEnumLegacyRoot(t *testing.T) {
	path := writeXML(t, t.TempDir(), "Old.xml", `<enum><name>OldEnum</name></enum>`)

	summary := ParseEnumSummary(path)
	require.NotNil(t, summary)
	assert.Equal(t, "OldEnum", summary.Name)
	assert.Equal(t, "Uncategorized", summary.Category.Default())
}

func TestParseEnumBareValues(t *testing.T) {
	path := writeXML(t, t.TempDir(), "Bare.xml", `<enumeration>
		<name>BareEnum</name>
		<values><value>ONLY</value></values>
	</enumeration>`)

	summary := ParseEnumSummary(path)
	require.NotNil(t, summary)
	require.Len(t, summary.Values, 1)
	assert.Equal(t, "ONLY", summary.Values[0].Name)
}

func TestParseEnumWrongRootReturnsNil(t *testing.T) {
	path := writeXML(t, t.TempDir(), "x.xml", `<function><name>fn</name></function>`)
	assert.Nil(t, ParseEnumSummary(path))
}
