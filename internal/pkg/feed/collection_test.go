//go:build unit

package feed

import (
	"encoding/xml"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCollection_Unmarshal(t *testing.T) {
	type doc struct {
		XMLName xml.Name             `xml:"Package"`
		Cities  Collection[NamedRef] `xml:"Cities"`
	}

	unmarshalRequest := func(input string, want []NamedRef) func(t *testing.T) {
		return func(t *testing.T) {
			var d doc
			assert.NoError(t, xml.Unmarshal([]byte(input), &d))

			if diff := cmp.Diff(want, d.Cities.Items); diff != "" {
				t.Fatalf("Collection items mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("absent_wrapper", unmarshalRequest(
		`<Package></Package>`,
		nil,
	))
	t.Run("empty_wrapper", unmarshalRequest(
		`<Package><Cities></Cities></Package>`,
		nil,
	))
	t.Run("single_child", unmarshalRequest(
		`<Package><Cities><City><Id>7</Id><Name>Рим</Name></City></Cities></Package>`,
		[]NamedRef{{ID: "7", Name: "Рим"}},
	))
	t.Run("many_children_order_preserved", unmarshalRequest(
		`<Package><Cities>
			<City><Id>1</Id><Name>Рим</Name></City>
			<City><Id>2</Id><Name>Париж</Name></City>
			<City><Id>3</Id><Name>Виена</Name></City>
		</Cities></Package>`,
		[]NamedRef{{ID: "1", Name: "Рим"}, {ID: "2", Name: "Париж"}, {ID: "3", Name: "Виена"}},
	))
}

func TestImage_Unmarshal(t *testing.T) {
	type doc struct {
		XMLName xml.Name          `xml:"Package"`
		Images  Collection[Image] `xml:"Images"`
	}

	unmarshalRequest := func(input string, want []Image) func(t *testing.T) {
		return func(t *testing.T) {
			var d doc
			assert.NoError(t, xml.Unmarshal([]byte(input), &d))

			if diff := cmp.Diff(want, d.Images.Items); diff != "" {
				t.Fatalf("Image items mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("url_child", unmarshalRequest(
		`<Package><Images><Image><Url>https://cdn.example/a.jpg</Url></Image></Images></Package>`,
		[]Image{{URL: "https://cdn.example/a.jpg"}},
	))
	t.Run("bare_text", unmarshalRequest(
		`<Package><Images><Image>https://cdn.example/b.jpg</Image></Images></Package>`,
		[]Image{{URL: "https://cdn.example/b.jpg"}},
	))
	t.Run("mixed_shapes", unmarshalRequest(
		`<Package><Images>
			<Image><Url>https://cdn.example/a.jpg</Url></Image>
			<Image>https://cdn.example/b.jpg</Image>
		</Images></Package>`,
		[]Image{{URL: "https://cdn.example/a.jpg"}, {URL: "https://cdn.example/b.jpg"}},
	))
}

func TestLenientNumbers(t *testing.T) {
	type doc struct {
		XMLName  xml.Name `xml:"Package"`
		Duration Int      `xml:"Duration"`
		Price    Float    `xml:"MinPriceInDouble"`
	}

	unmarshalRequest := func(input string, wantDuration Int, wantPrice Float) func(t *testing.T) {
		return func(t *testing.T) {
			var d doc
			assert.NoError(t, xml.Unmarshal([]byte(input), &d))
			assert.Equal(t, wantDuration, d.Duration)
			assert.Equal(t, wantPrice, d.Price)
		}
	}

	t.Run("valid", unmarshalRequest(`<Package><Duration>8</Duration><MinPriceInDouble>1295.50</MinPriceInDouble></Package>`, 8, 1295.50))
	t.Run("empty_elements_default_to_zero", unmarshalRequest(`<Package><Duration></Duration><MinPriceInDouble/></Package>`, 0, 0))
	t.Run("junk_defaults_to_zero", unmarshalRequest(`<Package><Duration>n/a</Duration><MinPriceInDouble>-</MinPriceInDouble></Package>`, 0, 0))
	t.Run("absent_defaults_to_zero", unmarshalRequest(`<Package></Package>`, 0, 0))
}

func TestPackageDocument_HasPackageRoot(t *testing.T) {
	var pkg PackageDocument
	assert.NoError(t, xml.Unmarshal([]byte(`<Package><Id>42</Id></Package>`), &pkg))
	assert.True(t, pkg.HasPackageRoot())
	assert.Equal(t, "42", pkg.ID)

	var other PackageDocument
	assert.NoError(t, xml.Unmarshal([]byte(`<Packages/>`), &other))
	assert.False(t, other.HasPackageRoot())
}
