package request

type CreateBucketRequest struct {
	Name string `json:"name"`
}

type RenameBucketRequest struct {
	Name string `json:"name"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
