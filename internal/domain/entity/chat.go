package entity

import "time"

// ChatThread is a customer's conversation with one store. One thread per
// (customer, store) pair.
type ChatThread struct {
	ID            string    `json:"id" firestore:"id"`
	StoreID       string    `json:"store_id" firestore:"storeId"`
	CustomerID    string    `json:"customer_id" firestore:"customerId"`
	CustomerName  string    `json:"customer_name" firestore:"customerName"`
	StoreName     string    `json:"store_name" firestore:"storeName"`
	LastMessage   string    `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time `json:"last_message_at" firestore:"lastMessageAt"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}

type ChatMessage struct {
	ID        string    `json:"id" firestore:"id"`
	ThreadID  string    `json:"thread_id" firestore:"threadId"`
	SenderID  string    `json:"sender_id" firestore:"senderId"`
	FromStore bool      `json:"from_store" firestore:"fromStore"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
