package almanac

// GeocodeResponse models the reverse-geocoding payload returned by the
// upstream place lookup endpoint.
type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

// GeocodeResult is a single candidate place for a coordinate pair.
type GeocodeResult struct {
	Name     string           `json:"name"`
	Country  string           `json:"country"`
	State    string           `json:"state"`
	City     string           `json:"city"`
	District string           `json:"district"`
	Suburb   string           `json:"suburb"`
	Lat      float64          `json:"lat"`
	Lon      float64          `json:"lon"`
	Timezone *GeocodeTimezone `json:"timezone"`
}

// GeocodeTimezone carries the timezone block of a geocode result. The
// standard offset comes back as "+HH:MM".
type GeocodeTimezone struct {
	Name      string `json:"name"`
	OffsetSTD string `json:"offset_STD"`
}

// PanchangParams is the request body shared by the monthly and daily
// panchang endpoints. Field names mirror the upstream API, underscores
// included. CityLon carries the longitude string: the upstream service
// expects the longitude in its city_ field.
type PanchangParams struct {
	BirthDate    string `json:"birth_date_"` // dd-MM-yyyy
	BirthTime    string `json:"birth_time_"` // HH:mm:ss
	Lat          string `json:"lat_"`
	Lon          string `json:"lon_"`
	TZone        string `json:"tzone_"` // decimal hours, e.g. "5.5"
	Place        string `json:"place_"`
	Country      string `json:"country_"`
	State        string `json:"state_"`
	CityLon      string `json:"city_"`
	Lang         string `json:"lang_"`
	PanchangType string `json:"panchang_type"` // "1" daily, "2" monthly
	JSONResponse string `json:"json_response"`
	PanchangID   int    `json:"panchang_id"`
	ReqFrm       int    `json:"req_frm"`
	SPMode       int    `json:"spmode"`
}

// MonthlyResponse wraps the flat row list of the monthly endpoint.
type MonthlyResponse struct {
	Table []MonthlyRow `json:"table"`
}

// MonthlyRow is one flat almanac row. Sort discriminates what TithiName
// holds: 1 tithi (with NakshatraName), 2 sunrise, 3 sunset, 4 special event.
type MonthlyRow struct {
	Status            int    `json:"status"`
	Msg               string `json:"msg"`
	MonthlyPanchangID int    `json:"monthly_panchang_id"`
	DayID             int    `json:"day_id"`
	TithiName         string `json:"tithi_name"`
	NakshatraName     string `json:"nakshatra_name"`
	DateName          string `json:"date_name"` // yyyy-MM-dd
	Sort              int    `json:"sort"`
	ColorCode         string `json:"color_code"`
}

// DailyResponse wraps the daily endpoint's record list.
type DailyResponse struct {
	Table []DailyDetail `json:"table"`
}

// DailyDetail is the rich per-date record of the daily endpoints. JSONData
// holds an embedded JSON document parsed into DetailPayload when non-empty.
type DailyDetail struct {
	Status              int    `json:"status"`
	Msg                 string `json:"msg"`
	DailyPanchangID     int    `json:"daily_panchang_id"`
	MonthName           string `json:"month_name"`
	FestiveName         string `json:"festive_name"`
	DayName             string `json:"day_name"`
	Sunrise             string `json:"sunrise"`
	Sunset              string `json:"sunset"`
	Moonrise            string `json:"moonrise"`
	Moonset             string `json:"moonset"`
	Paksha              string `json:"paksha"`
	Ritu                string `json:"ritu"`
	SunSign             string `json:"sun_sign"`
	MoonSign            string `json:"moon_sign"`
	Ayana               string `json:"ayana"`
	PanchangYog         string `json:"panchang_yog"`
	VikramSamvat        string `json:"vikram_samvat"`
	ShakaSamvat         string `json:"shaka_samvat"`
	ShakaSamvatName     string `json:"shaka_samvat_name"`
	VikramSamvatName    string `json:"vkram_samvat_name"`
	DishaShool          string `json:"disha_shool"`
	NakShool            string `json:"nak_shool"`
	MoonNivas           string `json:"moon_nivas"`
	AbhijitMuhurtaStart string `json:"abhijit_muhurta_start"`
	AbhijitMuhurtaEnd   string `json:"abhijit_muhurta_end"`
	RahukaalStart       string `json:"rahukaal_start_start"`
	RahukaalEnd         string `json:"rahukaal_start_end"`
	GuliKaalStart       string `json:"guliKaal_start"`
	GuliKaalEnd         string `json:"guliKaal_end"`
	YamghantKaalStart   string `json:"yamghant_kaal_start"`
	YamghantKaalEnd     string `json:"yamghant_kaal_end"`
	TithiEnd            string `json:"tithi_end_date_time"`
	NakshatraEnd        string `json:"nakshatra_end_date_time"`
	YogEnd              string `json:"yog_end_date_time"`
	KaranEnd            string `json:"karan_end_date_time"`
	CreatedDatetime     string `json:"created_datetime"`
	JSONData            string `json:"json_data"`
}

// DetailPayload is the parsed form of DailyDetail.JSONData.
type DetailPayload struct {
	Day            string          `json:"day"`
	Sunrise        string          `json:"sunrise"`
	Sunset         string          `json:"sunset"`
	Moonrise       string          `json:"moonrise"`
	Moonset        string          `json:"moonset"`
	VedicSunrise   string          `json:"vedic_sunrise"`
	VedicSunset    string          `json:"vedic_sunset"`
	Tithi          TithiBlock      `json:"tithi"`
	Nakshatra      NakshatraBlock  `json:"nakshatra"`
	Yog            YogBlock        `json:"yog"`
	Karan          KaranBlock      `json:"karan"`
	HinduMaah      HinduMaah       `json:"hindu_maah"`
	Paksha         string          `json:"paksha"`
	Ritu           string          `json:"ritu"`
	SunSign        string          `json:"sun_sign"`
	MoonSign       string          `json:"moon_sign"`
	Ayana          string          `json:"ayana"`
	PanchangYog    string          `json:"panchang_yog"`
	VikramSamvat   int             `json:"vikram_samvat"`
	ShakaSamvat    int             `json:"shaka_samvat"`
	DishaShool     string          `json:"disha_shool"`
	MoonNivas      string          `json:"moon_nivas"`
	AbhijitMuhurta TimeWindow      `json:"abhijit_muhurta"`
	Rahukaal       TimeWindow      `json:"rahukaal"`
	GuliKaal       TimeWindow      `json:"guliKaal"`
	YamghantKaal   TimeWindow      `json:"yamghant_kaal"`
}

// TimeWindow is a start/end pair of clock-time strings.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EndTime is an hour/minute/second triple used by the payload sub-blocks.
type EndTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

type TithiBlock struct {
	Details struct {
		TithiNumber int    `json:"tithi_number"`
		TithiName   string `json:"tithi_name"`
		Special     string `json:"special"`
		Summary     string `json:"summary"`
		Deity       string `json:"deity"`
	} `json:"details"`
	EndTime EndTime `json:"end_time"`
}

type NakshatraBlock struct {
	Details struct {
		NakNumber int    `json:"nak_number"`
		NakName   string `json:"nak_name"`
		Ruler     string `json:"ruler"`
		Deity     string `json:"deity"`
		Special   string `json:"special"`
		Summary   string `json:"summary"`
	} `json:"details"`
	EndTime EndTime `json:"end_time"`
}

type YogBlock struct {
	Details struct {
		YogNumber int    `json:"yog_number"`
		YogName   string `json:"yog_name"`
		Special   string `json:"special"`
		Meaning   string `json:"meaning"`
	} `json:"details"`
	EndTime EndTime `json:"end_time"`
}

type KaranBlock struct {
	Details struct {
		KaranNumber int    `json:"karan_number"`
		KaranName   string `json:"karan_name"`
		Special     string `json:"special"`
		Deity       string `json:"deity"`
	} `json:"details"`
	EndTime EndTime `json:"end_time"`
}

// HinduMaah names the lunar month under both reckonings.
type HinduMaah struct {
	AdhikStatus  bool   `json:"adhik_status"`
	Purnimanta   string `json:"purnimanta"`
	Amanta       string `json:"amanta"`
	AmantaID     int    `json:"amanta_id"`
	PurnimantaID int    `json:"purnimanta_id"`
}

// EventParams is the request body of the event-type endpoint. SPMode "0"
// lists event types; "1" fetches details for EventID.
type EventParams struct {
	EventID   string `json:"event_id"`
	EventDate string `json:"event_date"`
	SPMode    string `json:"spmode"`
}

// EventTypeItem is one entry of the event-type list.
type EventTypeItem struct {
	EventID        int    `json:"event_id"`
	EventName      string `json:"event_name"`
	ModeID         int    `json:"mode_id"` // 0 occasion, 2 tithi, 3 festival
	DefaultEventID int    `json:"default_event_id"`
}

// EventDetails describes the next occurrence of a selected event.
type EventDetails struct {
	NextDate   string `json:"next_date"`
	DayName    string `json:"day_name"`
	HinduMonth string `json:"hindu_month"`
	TithiName  string `json:"tithi_name"`
	Paksha     string `json:"paksha"`
	TithiID    int    `json:"tithi_id"`
	MonthID    string `json:"month_id"`
	Frequency  string `json:"frequency"`
}
