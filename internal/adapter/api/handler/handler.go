package handler

import (
	"github.com/burhansaar3-alt/app/internal/infrastructure/storage"
	"github.com/burhansaar3-alt/app/internal/infrastructure/websocket"
	"github.com/burhansaar3-alt/app/internal/usecase"
)

var (
	authHandler      *AuthHandler
	storeHandler     *StoreHandler
	productHandler   *ProductHandler
	cartHandler      *CartHandler
	orderHandler     *OrderHandler
	complaintHandler *ComplaintHandler
	wishlistHandler  *WishlistHandler
	userHandler      *UserHandler
	chatHandler      *ChatHandler
	fileHandler      *FileHandler
	wsHandler        *WebSocketHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	storeUseCase *usecase.StoreUseCase,
	productUseCase *usecase.ProductUseCase,
	cartUseCase *usecase.CartUseCase,
	orderUseCase *usecase.OrderUseCase,
	complaintUseCase *usecase.ComplaintUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	userUseCase *usecase.UserUseCase,
	chatUseCase *usecase.ChatUseCase,
	storageClient *storage.CloudStorageClient,
	wsManager *websocket.Manager,
) {
	authHandler = NewAuthHandler(authUseCase)
	storeHandler = NewStoreHandler(storeUseCase)
	productHandler = NewProductHandler(productUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	complaintHandler = NewComplaintHandler(complaintUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	userHandler = NewUserHandler(userUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	fileHandler = NewFileHandler(storageClient)
	wsHandler = NewWebSocketHandler(wsManager)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetStoreHandler() *StoreHandler {
	return storeHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetComplaintHandler() *ComplaintHandler {
	return complaintHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return wsHandler
}
