package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"ark_deals/config"
	models "ark_deals/core/api/models/mongodb"
	"ark_deals/core/database"
	"ark_deals/core/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initConfig()           // Khởi tạo cấu hình server
	initValidator()        // Khởi tạo validator
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Orders = "orders"
	global.MongoDB_ColNames.Advertisements = "advertisements"
	global.MongoDB_ColNames.ReportedItems = "reported_items"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, user_role, exists)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khơi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), models.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Categories), models.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), models.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Orders), models.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Advertisements), models.Advertisement{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ReportedItems), models.ReportedItem{})
}
