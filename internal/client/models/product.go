package models

// Image is one uploaded product picture as stored by the backend.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	ID       string `json:"_id"`
}

// Product is the catalogue record.
type Product struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       Price   `json:"price"`
	Images      []Image `json:"images"`
	Artisan     string  `json:"artisan"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// Artisan is the seller contact record attached to a product detail.
type Artisan struct {
	ID     string `json:"_id"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

// ProductDetail pairs a product with its artisan. Artisan is nil when the
// backend could not resolve the seller.
type ProductDetail struct {
	Product Product
	Artisan *Artisan
}

// NewProduct is the local draft of a product to create. ImagePaths are
// filesystem paths of the pictures to upload.
type NewProduct struct {
	Title       string
	Description string
	Price       Price
	ImagePaths  []string
}

// ProductUpdate carries the editable product fields.
type ProductUpdate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
}

// Stats is the admin dashboard counters response.
type Stats struct {
	TotalUsers    int `json:"users"`
	TotalProducts int `json:"products"`
}
