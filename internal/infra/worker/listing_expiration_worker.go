package worker

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// ListingExpirationWorker retires stale marketplace listings. An available
// lead that nobody bought inside the listing window flips to expired so the
// marketplace only shows fresh inventory.
type ListingExpirationWorker struct {
	db            *sql.DB
	listingWindow time.Duration
	tickInterval  time.Duration
}

func NewListingExpirationWorker(db *sql.DB, listingWindow time.Duration) *ListingExpirationWorker {
	if listingWindow <= 0 {
		listingWindow = 30 * 24 * time.Hour
	}
	return &ListingExpirationWorker{
		db:            db,
		listingWindow: listingWindow,
		tickInterval:  1 * time.Hour,
	}
}

func (w *ListingExpirationWorker) Start(ctx context.Context) {
	log.Printf("🕒 Listing Expiration Worker iniciado (janela de %s)", w.listingWindow)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.expireOldListings(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Listing Expiration Worker encerrado")
			return
		case <-ticker.C:
			w.expireOldListings(ctx)
		}
	}
}

func (w *ListingExpirationWorker) expireOldListings(ctx context.Context) {
	query := `
		UPDATE leads
		SET
			listing_status = 'expired',
			updated_at = NOW()
		WHERE
			listing_status = 'available'
			AND updated_at < NOW() - ($1 * INTERVAL '1 hour')
		RETURNING id, vendor_id, updated_at
	`

	rows, err := w.db.QueryContext(ctx, query, w.listingWindow.Hours())
	if err != nil {
		log.Printf("❌ Erro ao buscar listagens expiradas: %v", err)
		return
	}
	defer rows.Close()

	expiredCount := 0
	for rows.Next() {
		var leadID, vendorID string
		var updatedAt time.Time

		if err := rows.Scan(&leadID, &vendorID, &updatedAt); err != nil {
			log.Printf("⚠️ Erro ao escanear listagem expirada: %v", err)
			continue
		}

		log.Printf("⏱️ Listagem expirada: lead=%s vendor=%s", leadID, vendorID)
		expiredCount++
	}

	if expiredCount > 0 {
		log.Printf("✅ %d listagem(ns) marcadas como expired", expiredCount)
	}
}
