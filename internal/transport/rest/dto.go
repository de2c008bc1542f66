package rest

import (
	"github.com/heartmarshall/itemshelf-backend/internal/domain"
)

// itemRequest is the body of POST/PUT /items.
type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (req *itemRequest) fromForm(get func(string) (string, bool)) {
	req.Name, _ = get("name")
	req.Description, _ = get("description")
}

// collectionRequest is the body of POST/PUT /collections.
type collectionRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (req *collectionRequest) fromForm(get func(string) (string, bool)) {
	req.Name, _ = get("name")
	if d, ok := get("description"); ok {
		req.Description = &d
	}
}

type itemResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type collectionResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Items       []int  `json:"items"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type collectionViewResponse struct {
	collectionResponse
	ItemDetails []itemResponse `json:"itemDetails"`
}

type addItemResponse struct {
	Collection collectionResponse `json:"collection"`
	Item       itemResponse       `json:"item"`
}

func toItemResponse(it *domain.Item) itemResponse {
	resp := itemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   formatTime(it.CreatedAt),
	}
	if it.UpdatedAt != nil {
		resp.UpdatedAt = formatTime(*it.UpdatedAt)
	}
	return resp
}

func toItemResponses(items []*domain.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toCollectionResponse(c *domain.Collection) collectionResponse {
	resp := collectionResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Items:       c.ItemIDs,
		CreatedAt:   formatTime(c.CreatedAt),
	}
	if resp.Items == nil {
		resp.Items = []int{}
	}
	if c.UpdatedAt != nil {
		resp.UpdatedAt = formatTime(*c.UpdatedAt)
	}
	return resp
}

func toCollectionViewResponse(v *domain.CollectionView) collectionViewResponse {
	details := make([]itemResponse, 0, len(v.ItemDetails))
	for i := range v.ItemDetails {
		details = append(details, toItemResponse(&v.ItemDetails[i]))
	}
	return collectionViewResponse{
		collectionResponse: toCollectionResponse(&v.Collection),
		ItemDetails:        details,
	}
}
