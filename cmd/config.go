package cmd

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	NotifyBaseURL  string
	NotifyToken    string
	AdminIDs       []int64
	DigestSchedule string
}
