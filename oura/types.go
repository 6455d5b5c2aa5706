package oura

import "time"

type PersonalInfo struct {
	ID            string  `json:"id"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	BiologicalSex string  `json:"biological_sex"`
	Email         string  `json:"email"`
}

func (p PersonalInfo) validateFields() map[string]string {
	return requireID(p.ID)
}

type RingConfiguration struct {
	ID              string     `json:"id"`
	Color           string     `json:"color"`
	Design          string     `json:"design"`
	FirmwareVersion string     `json:"firmware_version"`
	HardwareType    string     `json:"hardware_type"`
	SetUpAt         *time.Time `json:"set_up_at"`
	Size            *int       `json:"size"`
}

func (r RingConfiguration) validateFields() map[string]string {
	return requireID(r.ID)
}

type DailySleep struct {
	ID           string            `json:"id"`
	Day          string            `json:"day"`
	Score        *int              `json:"score"`
	Contributors SleepContributors `json:"contributors"`
	Timestamp    time.Time         `json:"timestamp"`
}

func (d DailySleep) validateFields() map[string]string {
	return requireIDAndDay(d.ID, d.Day)
}

type SleepContributors struct {
	DeepSleep   *int `json:"deep_sleep"`
	Efficiency  *int `json:"efficiency"`
	Latency     *int `json:"latency"`
	RemSleep    *int `json:"rem_sleep"`
	Restfulness *int `json:"restfulness"`
	Timing      *int `json:"timing"`
	TotalSleep  *int `json:"total_sleep"`
}

type DailyReadiness struct {
	ID                        string                `json:"id"`
	Day                       string                `json:"day"`
	Score                     *int                  `json:"score"`
	Contributors              ReadinessContributors `json:"contributors"`
	TemperatureDeviation      *float64              `json:"temperature_deviation"`
	TemperatureTrendDeviation *float64              `json:"temperature_trend_deviation"`
	Timestamp                 time.Time             `json:"timestamp"`
}

func (d DailyReadiness) validateFields() map[string]string {
	return requireIDAndDay(d.ID, d.Day)
}

type ReadinessContributors struct {
	ActivityBalance     *int `json:"activity_balance"`
	BodyTemperature     *int `json:"body_temperature"`
	HRVBalance          *int `json:"hrv_balance"`
	PreviousDayActivity *int `json:"previous_day_activity"`
	PreviousNight       *int `json:"previous_night"`
	RecoveryIndex       *int `json:"recovery_index"`
	RestingHeartRate    *int `json:"resting_heart_rate"`
	SleepBalance        *int `json:"sleep_balance"`
}

type DailyActivity struct {
	ID                        string               `json:"id"`
	Day                       string               `json:"day"`
	Score                     *int                 `json:"score"`
	Class5Min                 *string              `json:"class_5_min"`
	ActiveCalories            int                  `json:"active_calories"`
	AverageMetMinutes         float64              `json:"average_met_minutes"`
	Contributors              ActivityContributors `json:"contributors"`
	EquivalentWalkingDistance int                  `json:"equivalent_walking_distance"`
	HighActivityMetMinutes    int                  `json:"high_activity_met_minutes"`
	HighActivityTime          int                  `json:"high_activity_time"`
	InactivityAlerts          int                  `json:"inactivity_alerts"`
	LowActivityMetMinutes     int                  `json:"low_activity_met_minutes"`
	LowActivityTime           int                  `json:"low_activity_time"`
	MediumActivityMetMinutes  int                  `json:"medium_activity_met_minutes"`
	MediumActivityTime        int                  `json:"medium_activity_time"`
	Met                       *SampleData          `json:"met"`
	MetersToTarget            int                  `json:"meters_to_target"`
	NonWearTime               int                  `json:"non_wear_time"`
	RestingTime               int                  `json:"resting_time"`
	SedentaryMetMinutes       int                  `json:"sedentary_met_minutes"`
	SedentaryTime             int                  `json:"sedentary_time"`
	Steps                     int                  `json:"steps"`
	TargetCalories            int                  `json:"target_calories"`
	TargetMeters              int                  `json:"target_meters"`
	TotalCalories             int                  `json:"total_calories"`
	Timestamp                 time.Time            `json:"timestamp"`
}

func (d DailyActivity) validateFields() map[string]string {
	return requireIDAndDay(d.ID, d.Day)
}

type ActivityContributors struct {
	MeetDailyTargets  *int `json:"meet_daily_targets"`
	MoveEveryHour     *int `json:"move_every_hour"`
	RecoveryTime      *int `json:"recovery_time"`
	StayActive        *int `json:"stay_active"`
	TrainingFrequency *int `json:"training_frequency"`
	TrainingVolume    *int `json:"training_volume"`
}

// SampleData is a timestamped series of samples at a fixed interval.
// Items are nullable; a nil entry means no reading for that slot.
type SampleData struct {
	Interval  float64    `json:"interval"`
	Items     []*float64 `json:"items"`
	Timestamp time.Time  `json:"timestamp"`
}

type DailyResilience struct {
	ID           string                 `json:"id"`
	Day          string                 `json:"day"`
	Contributors ResilienceContributors `json:"contributors"`
	Level        string                 `json:"level"`
}

func (d DailyResilience) validateFields() map[string]string {
	return requireIDAndDay(d.ID, d.Day)
}

type ResilienceContributors struct {
	SleepRecovery   float64 `json:"sleep_recovery"`
	DaytimeRecovery float64 `json:"daytime_recovery"`
	Stress          float64 `json:"stress"`
}

type DailySpO2 struct {
	ID                        string          `json:"id"`
	Day                       string          `json:"day"`
	SpO2Percentage            *SpO2Percentage `json:"spo2_percentage"`
	BreathingDisturbanceIndex *int            `json:"breathing_disturbance_index"`
}

func (d DailySpO2) validateFields() map[string]string {
	return requireIDAndDay(d.ID, d.Day)
}

type SpO2Percentage struct {
	Average float64 `json:"average"`
}

type DailyStress struct {
	ID           string  `json:"id"`
	Day          string  `json:"day"`
	StressHigh   *int    `json:"stress_high"`
	RecoveryHigh *int    `json:"recovery_high"`
	DaySummary   *string `json:"day_summary"`
}

func (d DailyStress) validateFields() map[string]string {
	return requireIDAndDay(d.ID, d.Day)
}

type EnhancedTag struct {
	ID          string     `json:"id"`
	TagTypeCode *string    `json:"tag_type_code"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	StartDay    string     `json:"start_day"`
	EndDay      *string    `json:"end_day"`
	Comment     *string    `json:"comment"`
	CustomName  *string    `json:"custom_name"`
}

func (t EnhancedTag) validateFields() map[string]string {
	return requireID(t.ID)
}

// HeartRate is a single heart rate reading. Unlike the other summary
// records it carries no document id.
type HeartRate struct {
	BPM       int       `json:"bpm"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

type RestModePeriod struct {
	ID        string            `json:"id"`
	StartDay  string            `json:"start_day"`
	StartTime *time.Time        `json:"start_time"`
	EndDay    *string           `json:"end_day"`
	EndTime   *time.Time        `json:"end_time"`
	Episodes  []RestModeEpisode `json:"episodes"`
}

func (r RestModePeriod) validateFields() map[string]string {
	return requireID(r.ID)
}

type RestModeEpisode struct {
	Tags      []string  `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}

type Session struct {
	ID                   string      `json:"id"`
	Day                  string      `json:"day"`
	StartDatetime        time.Time   `json:"start_datetime"`
	EndDatetime          time.Time   `json:"end_datetime"`
	Type                 string      `json:"type"`
	Mood                 *string     `json:"mood"`
	HeartRate            *SampleData `json:"heart_rate"`
	HeartRateVariability *SampleData `json:"heart_rate_variability"`
	MotionCount          *SampleData `json:"motion_count"`
}

func (s Session) validateFields() map[string]string {
	return requireIDAndDay(s.ID, s.Day)
}

// SleepPeriod is one recorded sleep period, as opposed to the DailySleep
// aggregate score.
type SleepPeriod struct {
	ID                    string      `json:"id"`
	Day                   string      `json:"day"`
	AverageBreath         *float64    `json:"average_breath"`
	AverageHeartRate      *float64    `json:"average_heart_rate"`
	AverageHRV            *int        `json:"average_hrv"`
	AwakeTime             *int        `json:"awake_time"`
	BedtimeEnd            time.Time   `json:"bedtime_end"`
	BedtimeStart          time.Time   `json:"bedtime_start"`
	DeepSleepDuration     *int        `json:"deep_sleep_duration"`
	Efficiency            *int        `json:"efficiency"`
	HeartRate             *SampleData `json:"heart_rate"`
	HRV                   *SampleData `json:"hrv"`
	Latency               *int        `json:"latency"`
	LightSleepDuration    *int        `json:"light_sleep_duration"`
	LowBatteryAlert       bool        `json:"low_battery_alert"`
	LowestHeartRate       *int        `json:"lowest_heart_rate"`
	Movement30Sec         *string     `json:"movement_30_sec"`
	Period                int         `json:"period"`
	RemSleepDuration      *int        `json:"rem_sleep_duration"`
	RestlessPeriods       *int        `json:"restless_periods"`
	SleepPhase5Min        *string     `json:"sleep_phase_5_min"`
	SleepAlgorithmVersion *string     `json:"sleep_algorithm_version"`
	TimeInBed             int         `json:"time_in_bed"`
	TotalSleepDuration    *int        `json:"total_sleep_duration"`
	Type                  string      `json:"type"`
}

func (s SleepPeriod) validateFields() map[string]string {
	return requireIDAndDay(s.ID, s.Day)
}

type SleepTime struct {
	ID             string          `json:"id"`
	Day            string          `json:"day"`
	OptimalBedtime *OptimalBedtime `json:"optimal_bedtime"`
	Recommendation *string         `json:"recommendation"`
	Status         *string         `json:"status"`
}

func (s SleepTime) validateFields() map[string]string {
	return requireIDAndDay(s.ID, s.Day)
}

type OptimalBedtime struct {
	DayTz       int  `json:"day_tz"`
	EndOffset   *int `json:"end_offset"`
	StartOffset *int `json:"start_offset"`
}

type VO2Max struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"`
	Timestamp time.Time `json:"timestamp"`
	VO2Max    *float64  `json:"vo2_max"`
}

func (v VO2Max) validateFields() map[string]string {
	return requireIDAndDay(v.ID, v.Day)
}

type Workout struct {
	ID            string    `json:"id"`
	Day           string    `json:"day"`
	Activity      string    `json:"activity"`
	Calories      *float64  `json:"calories"`
	Distance      *float64  `json:"distance"`
	Intensity     string    `json:"intensity"`
	Label         *string   `json:"label"`
	Source        string    `json:"source"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

func (w Workout) validateFields() map[string]string {
	return requireIDAndDay(w.ID, w.Day)
}

func requireID(id string) map[string]string {
	if id == "" {
		return map[string]string{"id": "required"}
	}
	return nil
}

func requireIDAndDay(id, day string) map[string]string {
	fields := make(map[string]string)
	if id == "" {
		fields["id"] = "required"
	}
	if day == "" {
		fields["day"] = "required"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
