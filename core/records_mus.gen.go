// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceAΣ43ep8ebkKhMYumiWqOGgΞΞ = ord.NewSliceSer[string](ord.String)
	sliceI262H5XuRNR7wwXcxBMS5QΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var CategoryMUS = categoryMUS{}

type categoryMUS struct{}

func (s categoryMUS) Marshal(v Category, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s categoryMUS) Unmarshal(bs []byte) (v Category, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Category(tmp)
	return
}

func (s categoryMUS) Size(v Category) (size int) {
	return ord.String.Size(string(v))
}

func (s categoryMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var CatalogItemMUS = catalogItemMUS{}

type catalogItemMUS struct{}

func (s catalogItemMUS) Marshal(v CatalogItem, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Label, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.URL, bs[n:])
	n += CategoryMUS.Marshal(v.Category, bs[n:])
	n += sliceAΣ43ep8ebkKhMYumiWqOGgΞΞ.Marshal(v.Skills, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += sliceI262H5XuRNR7wwXcxBMS5QΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s catalogItemMUS) Unmarshal(bs []byte) (v CatalogItem, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = CategoryMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Skills, n1, err = sliceAΣ43ep8ebkKhMYumiWqOGgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceI262H5XuRNR7wwXcxBMS5QΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s catalogItemMUS) Size(v CatalogItem) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Label)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.URL)
	size += CategoryMUS.Size(v.Category)
	size += sliceAΣ43ep8ebkKhMYumiWqOGgΞΞ.Size(v.Skills)
	size += ord.String.Size(v.Text)
	size += sliceI262H5XuRNR7wwXcxBMS5QΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s catalogItemMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = CategoryMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceAΣ43ep8ebkKhMYumiWqOGgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceI262H5XuRNR7wwXcxBMS5QΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
