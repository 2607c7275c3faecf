package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const englishList = `
Profiles on interface Wi-Fi:

Group policy profiles (read only)
---------------------------------
    <None>

User profiles
-------------
    All User Profile     : HomeNet
    All User Profile     : CoffeeShop
    All User Profile     : Airport Free WiFi

`

const russianList = `
Профили на интерфейсе Беспроводная сеть:

Профили групповой политики (только чтение)
------------------------------------------
    <Нет>

Профили пользователей
---------------------
    Все профили пользователей : MTS_WiFi_5G
    Все профили пользователей : Дом

`

func TestParseProfileList_English(t *testing.T) {
	names := ParseProfileList(englishList, BuiltinLabelSets())

	assert.Equal(t, []string{"HomeNet", "CoffeeShop", "Airport Free WiFi"}, names)
}

func TestParseProfileList_Russian(t *testing.T) {
	names := ParseProfileList(russianList, BuiltinLabelSets())

	assert.Equal(t, []string{"MTS_WiFi_5G", "Дом"}, names)
}

func TestParseProfileList_NoHeader(t *testing.T) {
	output := "There is no wireless interface on the system.\n"

	names := ParseProfileList(output, BuiltinLabelSets())

	assert.Empty(t, names)
}

func TestParseProfileList_EmptyOutput(t *testing.T) {
	assert.Empty(t, ParseProfileList("", BuiltinLabelSets()))
}

func TestParseProfileList_StopsAtBlankLine(t *testing.T) {
	output := "User profiles\n" +
		"-------------\n" +
		"    All User Profile     : First\n" +
		"    All User Profile     : Second\n" +
		"\n" +
		"Some trailing section\n" +
		"    All User Profile     : Ignored\n"

	names := ParseProfileList(output, BuiltinLabelSets())

	assert.Equal(t, []string{"First", "Second"}, names)
}

func TestParseProfileList_StopsAtGroupPolicySection(t *testing.T) {
	output := "Профили пользователей\n" +
		"    Все профили пользователей : Видимый\n" +
		"Профили групповой политики\n" +
		"    Все профили пользователей : Скрытый\n"

	names := ParseProfileList(output, BuiltinLabelSets())

	assert.Equal(t, []string{"Видимый"}, names)
}

func TestParseProfileList_KeepsDuplicatesAndOrder(t *testing.T) {
	output := "User profiles\n" +
		"    All User Profile     : Twin\n" +
		"    All User Profile     : Twin\n"

	names := ParseProfileList(output, BuiltinLabelSets())

	assert.Equal(t, []string{"Twin", "Twin"}, names)
}

func TestParseProfileList_IgnoresLinesWithoutEntryLabel(t *testing.T) {
	output := "User profiles\n" +
		"-------------\n" +
		"    Current User Profile : NotMine\n" +
		"    All User Profile     : Mine\n"

	names := ParseProfileList(output, BuiltinLabelSets())

	assert.Equal(t, []string{"Mine"}, names)
}

func TestParseProfileList_RestrictedLocale(t *testing.T) {
	sets, err := ResolveLabelSets([]string{"en"})
	assert.NoError(t, err)

	// Russian output with only the English table configured: the header
	// is never recognized, so the result is empty, not an error.
	names := ParseProfileList(russianList, sets)
	assert.Empty(t, names)
}
