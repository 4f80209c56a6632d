package domain

import "encoding/json"

// Case is a purchasable bundle with a weighted pool of possible rewards.
// Cases are owned by the backend; the gateway only reads them.
type Case struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Image     string `json:"image,omitempty"`
	Type      string `json:"type,omitempty"`
	Contents  []Item `json:"contents"`
	Featured  bool   `json:"featured,omitempty"`
	IsNew     bool   `json:"isNew,omitempty"`
	IsPremium bool   `json:"isPremium,omitempty"`
}

type caseWire struct {
	ID        string `json:"id"`
	MongoID   string `json:"_id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Price     Money  `json:"price"`
	Image     string `json:"image"`
	Type      string `json:"type"`
	Contents  []Item `json:"contents"`
	Items     []Item `json:"items"`
	Featured  bool   `json:"featured"`
	IsNew     bool   `json:"isNew"`
	IsPremium bool   `json:"isPremium"`
}

// UnmarshalJSON tolerates `_id` ids and `items` instead of `contents`.
func (c *Case) UnmarshalJSON(data []byte) error {
	var w caseWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*c = Case{
		ID:        firstNonEmpty(w.ID, w.MongoID),
		Name:      firstNonEmpty(w.Name, w.Title),
		Price:     w.Price,
		Image:     w.Image,
		Type:      w.Type,
		Contents:  w.Contents,
		Featured:  w.Featured,
		IsNew:     w.IsNew,
		IsPremium: w.IsPremium,
	}
	if len(c.Contents) == 0 {
		c.Contents = w.Items
	}
	return nil
}

// Contains reports whether item is one of the case contents.
func (c *Case) Contains(item Item) bool {
	for _, content := range c.Contents {
		if content.Same(item) {
			return true
		}
	}
	return false
}
