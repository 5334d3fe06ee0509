package feed

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Collection decodes the feed's repeatable wrapper elements into an ordered
// list. The upstream serializes zero, one or many child elements under a
// wrapper (<Cities/>, <Cities><City/></Cities>, ...); all three shapes land
// here as a plain slice, in document order, never re-sorted. An absent
// wrapper leaves Items empty.
type Collection[T any] struct {
	Items []T
}

func (c *Collection[T]) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var item T
			if err := dec.DecodeElement(&item, &t); err != nil {
				return err
			}

			c.Items = append(c.Items, item)
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

// Int tolerates empty or malformed numeric elements, decoding them as zero.
// The feed sometimes leaves numeric fields empty instead of omitting them.
type Int int

func (n *Int) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var raw string
	if err := dec.DecodeElement(&raw, &start); err != nil {
		return err
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		*n = 0

		return nil
	}

	*n = Int(value)

	return nil
}

// Float is the lenient counterpart of Int for price fields.
type Float float64

func (f *Float) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var raw string
	if err := dec.DecodeElement(&raw, &start); err != nil {
		return err
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*f = 0

		return nil
	}

	*f = Float(value)

	return nil
}
