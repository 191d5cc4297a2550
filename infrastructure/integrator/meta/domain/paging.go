package metadomain

import jsoniter "github.com/json-iterator/go"

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
}

// Page é o envelope de listagem da Graph API. Os itens ficam crus para serem decodificados por família.
type Page struct {
	Data   []jsoniter.RawMessage `json:"data"`
	Paging *Paging               `json:"paging,omitempty"`
}

func (p *Page) NextURL() string {
	if p.Paging == nil {
		return ""
	}
	return p.Paging.Next
}
