// controllers/dashboard.go
package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"cindrella-backend/config"
	"cindrella-backend/models"
	"cindrella-backend/services"
	"cindrella-backend/utils"

	"github.com/gin-gonic/gin"
)

type RecentBill struct {
	Client    string  `json:"client"`
	Service   string  `json:"service"`
	Staff     string  `json:"staff"`
	Total     float64 `json:"total"`
	VisitDate string  `json:"visitDate"` // e.g. "Today", "Yesterday"
}

// GetDashboardOverview aggregates the bill log into the landing-view
// numbers: totals, today's and this month's revenue, and the latest visits.
func GetDashboardOverview(c *gin.Context) {
	billing := services.NewBilling(config.Store)
	directory := services.NewDirectory(config.Store)

	bills := billing.List()
	staff := directory.List()

	now := time.Now()
	today := utils.TodayISO(now)
	monthPrefix := now.Format("2006-01")

	var totalRevenue, todayRevenue, monthlyRevenue float64
	for _, b := range bills {
		totalRevenue += b.Total
		if b.Date == today {
			todayRevenue += b.Total
		}
		if strings.HasPrefix(b.Date, monthPrefix) {
			monthlyRevenue += b.Total
		}
	}

	activeStaff := 0
	for _, s := range staff {
		if s.Status == models.StaffActive {
			activeStaff++
		}
	}

	// Recent bills (the log is newest first already)
	recent := []RecentBill{}
	for _, b := range bills {
		if len(recent) >= 5 {
			break
		}
		label := b.Date
		if billDay, err := time.ParseInLocation("2006-01-02", b.Date, now.Location()); err == nil {
			switch days := utils.DaysBetween(billDay, now); days {
			case 0:
				label = "Today"
			case 1:
				label = "Yesterday"
			default:
				label = fmt.Sprintf("%d days ago", days)
			}
		}
		service := b.ServiceName
		if svc, ok := models.FindService(b.ServiceID); ok {
			service = svc.Name
		}
		recent = append(recent, RecentBill{
			Client:    b.Client,
			Service:   service,
			Staff:     b.Staff,
			Total:     b.Total,
			VisitDate: label,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBills":     len(bills),
		"totalStaff":     len(staff),
		"activeStaff":    activeStaff,
		"totalServices":  len(models.Catalog()),
		"totalRevenue":   totalRevenue,
		"todayRevenue":   todayRevenue,
		"monthlyRevenue": monthlyRevenue,
		"recentBills":    recent,
	})
}
