package entity

import (
	"time"
)

const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

type Product struct {
	ID          string   `json:"id" firestore:"id"`
	StoreID     string   `json:"store_id" firestore:"storeId"`
	CategoryID  string   `json:"category_id" firestore:"categoryId"`
	Name        string   `json:"name" firestore:"name"`
	Description string   `json:"description,omitempty" firestore:"description,omitempty"`
	Price       float64  `json:"price" firestore:"price"`
	Stock       int      `json:"stock" firestore:"stock"`
	Images      []string `json:"images" firestore:"images"`
	Sizes       []string `json:"sizes,omitempty" firestore:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty" firestore:"colors,omitempty"`
	ShoeSizes   []string `json:"shoe_sizes,omitempty" firestore:"shoeSizes,omitempty"`
	Status      string   `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Category struct {
	ID     string `json:"id" firestore:"id"`
	NameAr string `json:"name_ar" firestore:"nameAr"`
	NameEn string `json:"name_en" firestore:"nameEn"`
	Slug   string `json:"slug" firestore:"slug"`
	Icon   string `json:"icon,omitempty" firestore:"icon,omitempty"`
}

type Review struct {
	ID        string    `json:"id" firestore:"id"`
	ProductID string    `json:"product_id" firestore:"productId"`
	UserID    string    `json:"user_id" firestore:"userId"`
	UserName  string    `json:"user_name" firestore:"userName"`
	Rating    int       `json:"rating" firestore:"rating"`
	Comment   string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
