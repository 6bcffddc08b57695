package main

import (
	"context"

	"ark_deals/core/api/services"
	"ark_deals/core/logger"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	categoryService, err := services.NewCategoryService()
	if err != nil {
		log.Fatalf("Failed to initialize category service: %v", err)
	}

	// Seed danh mục mặc định khi collection còn trống
	log.Info("🔄 [INIT] Seeding default categories...")
	if err := categoryService.EnsureDefaults(context.Background()); err != nil {
		log.Fatalf("Failed to seed default categories: %v", err)
	}
	log.Info("✅ [INIT] Default categories ready")

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
