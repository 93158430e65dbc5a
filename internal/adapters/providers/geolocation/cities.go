package geolocation

import (
	"strings"

	"github.com/afandyna/ser-Health/internal/domain/entities"
)

// egyptCities are the selectable fallback locations when device location is denied.
var egyptCities = []entities.City{
	{ID: "cairo", Name: "Cairo", NameAr: "القاهرة", Lat: 30.0444, Lng: 31.2357, Governorate: "Cairo", GovernorateAr: "القاهرة"},
	{ID: "giza", Name: "Giza", NameAr: "الجيزة", Lat: 30.0131, Lng: 31.2089, Governorate: "Giza", GovernorateAr: "الجيزة"},
	{ID: "alexandria", Name: "Alexandria", NameAr: "الإسكندرية", Lat: 31.2001, Lng: 29.9187, Governorate: "Alexandria", GovernorateAr: "الإسكندرية"},
	{ID: "mansoura", Name: "Mansoura", NameAr: "المنصورة", Lat: 31.0409, Lng: 31.3785, Governorate: "Dakahlia", GovernorateAr: "الدقهلية"},
	{ID: "tanta", Name: "Tanta", NameAr: "طنطا", Lat: 30.7865, Lng: 31.0004, Governorate: "Gharbia", GovernorateAr: "الغربية"},
	{ID: "asyut", Name: "Asyut", NameAr: "أسيوط", Lat: 27.1783, Lng: 31.1859, Governorate: "Asyut", GovernorateAr: "أسيوط"},
	{ID: "ismailia", Name: "Ismailia", NameAr: "الإسماعيلية", Lat: 30.5965, Lng: 32.2715, Governorate: "Ismailia", GovernorateAr: "الإسماعيلية"},
	{ID: "port-said", Name: "Port Said", NameAr: "بورسعيد", Lat: 31.2653, Lng: 32.3019, Governorate: "Port Said", GovernorateAr: "بورسعيد"},
	{ID: "suez", Name: "Suez", NameAr: "السويس", Lat: 29.9668, Lng: 32.5498, Governorate: "Suez", GovernorateAr: "السويس"},
	{ID: "luxor", Name: "Luxor", NameAr: "الأقصر", Lat: 25.6872, Lng: 32.6396, Governorate: "Luxor", GovernorateAr: "الأقصر"},
	{ID: "aswan", Name: "Aswan", NameAr: "أسوان", Lat: 24.0889, Lng: 32.8998, Governorate: "Aswan", GovernorateAr: "أسوان"},
	{ID: "zagazig", Name: "Zagazig", NameAr: "الزقازيق", Lat: 30.5877, Lng: 31.5020, Governorate: "Sharqia", GovernorateAr: "الشرقية"},
	{ID: "damanhour", Name: "Damanhour", NameAr: "دمنهور", Lat: 31.0344, Lng: 30.4688, Governorate: "Beheira", GovernorateAr: "البحيرة"},
	{ID: "beni-suef", Name: "Beni Suef", NameAr: "بني سويف", Lat: 29.0661, Lng: 31.0994, Governorate: "Beni Suef", GovernorateAr: "بني سويف"},
	{ID: "fayoum", Name: "Fayoum", NameAr: "الفيوم", Lat: 29.3084, Lng: 30.8428, Governorate: "Fayoum", GovernorateAr: "الفيوم"},
	{ID: "minya", Name: "Minya", NameAr: "المنيا", Lat: 28.1099, Lng: 30.7503, Governorate: "Minya", GovernorateAr: "المنيا"},
	{ID: "sohag", Name: "Sohag", NameAr: "سوهاج", Lat: 26.5591, Lng: 31.6948, Governorate: "Sohag", GovernorateAr: "سوهاج"},
	{ID: "qena", Name: "Qena", NameAr: "قنا", Lat: 26.1551, Lng: 32.7160, Governorate: "Qena", GovernorateAr: "قنا"},
	{ID: "talkha", Name: "Talkha", NameAr: "طلخا", Lat: 31.0525, Lng: 31.3785, Governorate: "Dakahlia", GovernorateAr: "الدقهلية"},
	{ID: "aga", Name: "Aga", NameAr: "أجا", Lat: 30.9943, Lng: 31.2851, Governorate: "Dakahlia", GovernorateAr: "الدقهلية"},
	{ID: "mit-ghamr", Name: "Mit Ghamr", NameAr: "ميت غمر", Lat: 30.7166, Lng: 31.2595, Governorate: "Dakahlia", GovernorateAr: "الدقهلية"},
	{ID: "shibin-el-kom", Name: "Shibin El Kom", NameAr: "شبين الكوم", Lat: 30.5574, Lng: 31.0097, Governorate: "Menoufia", GovernorateAr: "المنوفية"},
	{ID: "kafr-el-sheikh", Name: "Kafr El Sheikh", NameAr: "كفر الشيخ", Lat: 31.1107, Lng: 30.9388, Governorate: "Kafr El Sheikh", GovernorateAr: "كفر الشيخ"},
	{ID: "hurghada", Name: "Hurghada", NameAr: "الغردقة", Lat: 27.2579, Lng: 33.8116, Governorate: "Red Sea", GovernorateAr: "البحر الأحمر"},
	{ID: "sharm-el-sheikh", Name: "Sharm El Sheikh", NameAr: "شرم الشيخ", Lat: 27.9158, Lng: 34.3300, Governorate: "South Sinai", GovernorateAr: "جنوب سيناء"},
	{ID: "october", Name: "6th of October", NameAr: "السادس من أكتوبر", Lat: 29.9285, Lng: 30.9188, Governorate: "Giza", GovernorateAr: "الجيزة"},
	{ID: "new-cairo", Name: "New Cairo", NameAr: "القاهرة الجديدة", Lat: 30.0300, Lng: 31.4700, Governorate: "Cairo", GovernorateAr: "القاهرة"},
	{ID: "obour", Name: "El Obour", NameAr: "العبور", Lat: 30.2300, Lng: 31.4800, Governorate: "Qalyubia", GovernorateAr: "القليوبية"},
}

// Cities returns a copy of the built-in city table.
func Cities() []entities.City {
	return append([]entities.City(nil), egyptCities...)
}

// LookupCity finds a city by id, English name or Arabic name.
func LookupCity(query string) (entities.City, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entities.City{}, false
	}
	for _, c := range egyptCities {
		if c.ID == q || strings.ToLower(c.Name) == q || c.NameAr == q {
			return c, true
		}
	}
	return entities.City{}, false
}
