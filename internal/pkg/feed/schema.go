package feed

import (
	"encoding/xml"
	"strings"
)

// Wire schema of the upstream feed endpoints. These types mirror the XML
// documents one to one; projection into API records happens in the service
// layer so that malformed upstream data fails at this boundary instead of
// leaking untyped values into responses.

// NamedRef is the common Id/Name pair used for countries, cities, transport
// and board references. Either element may be absent.
type NamedRef struct {
	ID   string `xml:"Id"`
	Name string `xml:"Name"`
}

// Period is a travel period with dates as given by the feed.
type Period struct {
	FromDate string `xml:"FromDate"`
	ToDate   string `xml:"ToDate"`
}

// MinPrice carries the display price and its note texts.
type MinPrice struct {
	Price          string `xml:"Price"`
	PriceNote      string `xml:"PriceNote"`
	PriceNoteShort string `xml:"PriceNoteShort"`
}

// Image appears either as <Image><Url>...</Url></Image> or as a bare
// <Image>...</Image> holding the URL as text. Both shapes yield URL.
type Image struct {
	URL string
}

func (im *Image) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		URL  string `xml:"Url"`
		Text string `xml:",chardata"`
	}

	if err := dec.DecodeElement(&raw, &start); err != nil {
		return err
	}

	im.URL = raw.URL
	if im.URL == "" {
		im.URL = strings.TrimSpace(raw.Text)
	}

	return nil
}

// PackageStub is a package as it appears in the index feed and the common
// part of the detail document.
type PackageStub struct {
	ID         string               `xml:"Id"`
	Title      string               `xml:"Title"`
	Subtitle   string               `xml:"Subtitle"`
	Duration   Int                  `xml:"Duration"`
	Overnights Int                  `xml:"Overnights"`
	Transport  NamedRef             `xml:"Transport"`
	Period     Period               `xml:"Period"`
	Countries  Collection[NamedRef] `xml:"Countries"`
	Cities     Collection[NamedRef] `xml:"Cities"`
	MinPrice   MinPrice             `xml:"MinPrice"`
	Images     Collection[Image]    `xml:"Images"`
}

// PackagesDocument is the root of the package index feed.
type PackagesDocument struct {
	XMLName  xml.Name      `xml:"Packages"`
	Packages []PackageStub `xml:"Package"`
}

// ScheduleDay is one entry of a package's daily schedule.
type ScheduleDay struct {
	ID      string `xml:"Id"`
	Title   string `xml:"Title"`
	Details string `xml:"Details"`
}

// HotelRecord is a hotel as embedded in a package detail document.
type HotelRecord struct {
	ID               string            `xml:"Id"`
	Name             string            `xml:"Name"`
	Country          NamedRef          `xml:"Country"`
	City             NamedRef          `xml:"City"`
	Website          string            `xml:"Website"`
	Images           Collection[Image] `xml:"Images"`
	Overview         string            `xml:"Overview"`
	Details          string            `xml:"Details"`
	Board            NamedRef          `xml:"Board"`
	MinPriceInDouble Float             `xml:"MinPriceInDouble"`
	Currency         string            `xml:"Currency"`
}

// PaymentRecord is an additional payment owed on top of the package price.
type PaymentRecord struct {
	Title    string `xml:"Title"`
	Price    string `xml:"Price"`
	Currency string `xml:"Currency"`
}

// ExcursionRecord is an optional excursion bookable alongside a package.
type ExcursionRecord struct {
	ID       string            `xml:"Id"`
	Title    string            `xml:"Title"`
	Subtitle string            `xml:"Subtitle"`
	Type     string            `xml:"Type"`
	Price    string            `xml:"Price"`
	Images   Collection[Image] `xml:"Images"`
	Overview string            `xml:"Overview"`
	Details  string            `xml:"Details"`
}

// PackageDocument is the root of the per-package detail feed. XMLName is
// left untagged so callers can detect responses whose root is not a
// <Package> node (the feed answers some retired ids that way).
type PackageDocument struct {
	XMLName xml.Name
	PackageStub
	Board                NamedRef                    `xml:"Board"`
	PriceNote1           string                      `xml:"PriceNote1"`
	PriceNote2           string                      `xml:"PriceNote2"`
	Overview             string                      `xml:"Overview"`
	AdditionalConditions string                      `xml:"AdditionalConditions"`
	DailySchedule        Collection[ScheduleDay]     `xml:"DailySchedule"`
	Hotels               Collection[HotelRecord]     `xml:"Hotels"`
	AdditionalPayments   Collection[PaymentRecord]   `xml:"AdditionalPayments"`
	AdditionalExcursions Collection[ExcursionRecord] `xml:"AdditionalExcursions"`
}

// HasPackageRoot reports whether the document's root node was an actual
// package. A non-Package root maps to "package not found" upstream.
func (d *PackageDocument) HasPackageRoot() bool {
	return d.XMLName.Local == "Package"
}

// DestinationCountry is one country of the destination taxonomy, with its
// cities nested one level below.
type DestinationCountry struct {
	ID     string               `xml:"Id"`
	Name   string               `xml:"Name"`
	Cities Collection[NamedRef] `xml:"Cities"`
}

// DestinationsDocument is the root of the destination taxonomy feed.
type DestinationsDocument struct {
	XMLName   xml.Name             `xml:"Destinations"`
	Countries []DestinationCountry `xml:"Country"`
}
