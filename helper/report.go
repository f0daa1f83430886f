package helper

import (
	"log"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"

	"food_delivery/utils"
)

var reportScheduler gocron.Scheduler

// SendDailyStatisticsReport gửi báo cáo thống kê cho quản trị viên qua email
func SendDailyStatisticsReport(db *gorm.DB) {
	log.Println("[CRON] SendDailyStatisticsReport triggered")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		log.Println("ADMIN_EMAIL chưa cấu hình, bỏ qua báo cáo")
		return
	}

	stats, err := ComputeStatistics(db)
	if err != nil {
		log.Printf("Lỗi tính thống kê cho báo cáo: %v", err)
		return
	}

	loc := time.FixedZone("ICT", 7*3600)
	data := utils.StatisticsReportData{
		Date:            time.Now().In(loc).AddDate(0, 0, -1).Format("02/01/2006"),
		TotalOrders:     stats.TotalOrders,
		TotalProducts:   stats.TotalProducts,
		TotalCategories: stats.TotalCategories,
		TotalRevenue:    stats.TotalRevenue,
	}
	if err := utils.SendStatisticsReportEmail(adminEmail, data); err != nil {
		log.Printf("Lỗi gửi báo cáo thống kê: %v", err)
	}
}

func StartDailyReportScheduler(db *gorm.DB) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	reportScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(1, 0, 0),
			),
		),
		gocron.NewTask(func() { SendDailyStatisticsReport(db) }),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Daily report scheduler started")
}

func StopDailyReportScheduler() {
	if reportScheduler != nil {
		if err := reportScheduler.Shutdown(); err != nil {
			log.Printf("Lỗi dừng report scheduler: %v", err)
		}
	}
}
