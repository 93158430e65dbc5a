package sample

import "github.com/afandyna/ser-Health/internal/domain/entities"

func ptr(v float64) *float64 { return &v }

func hospitals() []entities.Hospital {
	return []entities.Hospital{
		{ID: "h1", Name: "Mansoura University Hospitals", NameAr: "مستشفيات جامعة المنصورة", Phone: "0502202876", Address: "El Gomhouria Street, Mansoura", AddressAr: "شارع الجمهورية، المنصورة", Latitude: ptr(31.044283747970326), Longitude: ptr(31.363831964025813), Ambulance: true, Status: "available"},
		{ID: "h2", Name: "Mansoura University Emergency Hospital", NameAr: "مستشفى طوارىء جامعة المنصورة", Phone: "0502265472", Address: "Jehan Sadat, Mansoura", AddressAr: "جيهان السادات، المنصورة", Latitude: ptr(31.04310027470715), Longitude: ptr(31.364772308767215), Ambulance: true, Status: "available"},
		{ID: "h3", Name: "Mansoura Specialized Hospital", NameAr: "مستشفى المنصورة التخصصي", Phone: "0502202879", Address: "General Hospital, Mansoura, Beginning of Mansoura", AddressAr: "المستشفى العام، المنصورة، اول المنصورة", Latitude: ptr(31.044350111978606), Longitude: ptr(31.366261882592145), Ambulance: false, Status: "busy"},
		{ID: "h4", Name: "Delta Hospital", NameAr: "مستشفى الدلتا", Phone: "0502944602", Address: "Jihan Sadat, Mansoura, Dakahlia Governorate", AddressAr: "جيهان السادات، المنصورة، محافظة الدقهلية", Latitude: ptr(31.04283625863789), Longitude: ptr(31.36507468862837), Ambulance: true, Status: "available"},
		{ID: "h5", Name: "Aja Central Hospital (Amiri)", NameAr: "مستشفى اجا المركزي ( الاميري )", Phone: "0504455311", Address: "Port Said, Aja City, Aja Center, Dakahlia Governorate", AddressAr: "بور سعيد، مدينة أجا، مركز أجا، محافظة الدقهلية", Latitude: ptr(30.935878957988155), Longitude: ptr(31.290379499818172), Ambulance: true, Status: "busy"},
		{ID: "h6", Name: "Al Tawhid Private Hospital", NameAr: "مستشفي التوحيد الخاصة", Phone: "0504455662", Address: "Aja Center, Dakahlia Governorate", AddressAr: "مركز أجا، محافظة الدقهلية", Latitude: ptr(30.93952712385451), Longitude: ptr(31.293347461648438), Ambulance: true, Status: "available"},
		{ID: "h7", Name: "Cleopatra Hospital", NameAr: "مستشفى كليوباترا", Phone: "0224143931", Address: "Salah Salem, Cairo", AddressAr: "صلاح سالم، القاهرة", Latitude: ptr(30.093211315572713), Longitude: ptr(31.329815904011046), Ambulance: true, Status: "available"},
		{ID: "h8", Name: "Al-Salam International Hospital", NameAr: "مستشفى السلام الدولي", Phone: "01092001443", Address: "Maadi, Cairo", AddressAr: "المعادي، القاهرة", Latitude: ptr(29.985122824722197), Longitude: ptr(29.985122824722197), Ambulance: false, Status: "available"},
		{ID: "h9", Name: "Tahrir General Hospital", NameAr: "مستشفى التحرير العام", Phone: "0233118347", Address: "Nasouh Pasha St., Tahrir City, Giza", AddressAr: "ش نصوح باشا، مدينة التحرير، الجيزة", Latitude: ptr(30.08124249702104), Longitude: ptr(31.22240966751517), Ambulance: true, Status: "busy"},
		{ID: "h10", Name: "Al-Galaa Military Hospital", NameAr: "مستشفى الجلاء العسكري", Phone: "+20-2-012-3456", Address: "Heliopolis, Cairo", AddressAr: "مصر الجديدة، القاهرة", Latitude: ptr(30.09378802018141), Longitude: ptr(31.346049501042014), Ambulance: true, Status: "available"},
	}
}

func doctors() []entities.Doctor {
	return []entities.Doctor{
		{
			ID: "d1", Name: "Dr. Ahmed Al-Farsi", NameAr: "د. أحمد الفارسي",
			Specialty: "Cardiology", SpecialtyAr: "أمراض القلب",
			Clinic: "Heart Care Clinic", ClinicAr: "المنصورة، الدقهلية", Phone: "+20-10-111-1111",
			Latitude: ptr(31.0405), Longitude: ptr(31.378),
			Availability:   entities.AvailabilityAvailable,
			AvailableDays:  []string{"Sun", "Mon", "Tue", "Wed", "Thu"},
			AvailableSlots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
		},
		{
			ID: "d2", Name: "Dr. Sara Hassan", NameAr: "د. سارة حسن",
			Specialty: "Ophthalmology", SpecialtyAr: "طب العيون",
			Clinic: "Vision Plus", ClinicAr: "المنصورة، الدقهلية", Phone: "+20-10-222-2222",
			Latitude: ptr(31.041), Longitude: ptr(31.376),
			Availability:   entities.AvailabilityAvailable,
			AvailableDays:  []string{"Sun", "Mon", "Wed", "Thu"},
			AvailableSlots: []string{"10:00", "11:00", "12:00", "15:00", "16:00"},
		},
		{
			ID: "d3", Name: "Dr. Omar Khalid", NameAr: "د. عمر خالد",
			Specialty: "Orthopedics", SpecialtyAr: "جراحة العظام",
			Clinic: "Bone & Joint Center", ClinicAr: "المنصورة، الدقهلية", Phone: "+20-10-333-3333",
			Latitude: ptr(31.042), Longitude: ptr(31.38),
			Availability:   entities.AvailabilityBusy,
			AvailableDays:  []string{"Sun", "Tue", "Thu"},
			AvailableSlots: []string{"09:00", "10:00", "14:00", "15:00"},
		},
		{
			ID: "d4", Name: "Dr. Fatima Al-Rashid", NameAr: "د. فاطمة الراشد",
			Specialty: "Dermatology", SpecialtyAr: "الأمراض الجلدية",
			Clinic: "Skin Care Clinic", ClinicAr: "المنصورة، الدقهلية", Phone: "+20-10-444-4444",
			Latitude: ptr(31.0435), Longitude: ptr(31.3825),
			Availability:   entities.AvailabilityAvailable,
			AvailableDays:  []string{"Mon", "Wed", "Thu"},
			AvailableSlots: []string{"10:00", "11:00", "15:00", "16:00", "17:00"},
		},
		{
			ID: "d5", Name: "Dr. Youssef Nabil", NameAr: "د. يوسف نبيل",
			Specialty: "Internal Medicine", SpecialtyAr: "الطب الباطني",
			Clinic: "General Medicine Center", ClinicAr: "المنصورة، الدقهلية", Phone: "+20-10-555-5555",
			Latitude: ptr(31.039), Longitude: ptr(31.379),
			Availability:   entities.AvailabilityAvailable,
			AvailableDays:  []string{"Sun", "Mon", "Tue", "Wed", "Thu"},
			AvailableSlots: []string{"08:00", "09:00", "10:00", "11:00", "14:00", "15:00"},
		},
	}
}

func pharmacies() []entities.Pharmacy {
	return []entities.Pharmacy{
		{ID: "m1", Name: "صيدلية البسطويسى", NameAr: "صيدلية البسطويسى", Address: "Mansoura, Dakahlia, Egypt", AddressAr: "المنصورة، الدقهلية، مصر", Phone: "0502333333", Latitude: ptr(31.04627925297938), Longitude: ptr(31.370879774245818), IsOpen: true},
		{ID: "m2", Name: "صيدلية الشيماء", NameAr: "صيدلية الشيماء", Address: "المنصورة، الدقهلية", AddressAr: "المنصورة، الدقهلية، مصر", Phone: "0502344470", Latitude: ptr(31.036547179586087), Longitude: ptr(31.36519659968262), IsOpen: true},
		{ID: "m3", Name: "صيدلية مطاوع", NameAr: "صيدلية مطاوع", Address: "المنصوره، الدقهلية، مصر", AddressAr: "المنصورة، الدقهلية، مصر", Phone: "01201206505", Latitude: ptr(31.039794576287683), Longitude: ptr(31.363412583544058), IsOpen: true},
		{ID: "m4", Name: "صيدلية د/مجاهد السيد", NameAr: "صيدلية د/مجاهد السيد", Address: "طلخا، الدقهلية", AddressAr: "تقسيم سامية الجمل، المنصورة، الدقهلية، مصر", Phone: "+20-50-2222669", Latitude: ptr(31.046), Longitude: ptr(31.372), IsOpen: true},
		{ID: "m5", Name: "صيدلية البهني", NameAr: "صيدلية البهني", Address: "شارع الجامع، المنصورة، الدقهلية", AddressAr: "شارع الجامع، المنصورة، الدقهلية، مصر", Phone: "+20-50-2331180", Latitude: ptr(31.0442), Longitude: ptr(31.366), IsOpen: true},
		{ID: "m6", Name: "Serag El Din Pharmacy", NameAr: "صيدلية سراج الدين", Address: "62 شارع الجمهورية، المنصورة", AddressAr: "٦٢ شارع الجمهورية، المنصورة، الدقهلية، مصر", Phone: "+20-50-2268865", Latitude: ptr(31.0457), Longitude: ptr(31.3571), IsOpen: true},
		{ID: "m7", Name: "صيدلية الرحمة", NameAr: "صيدلية الرحمة", Address: "منشية الأوقاف، المنصورة، الدقهلية", AddressAr: "منشية الأوقاف، المنصورة، الدقهلية، مصر", Phone: "+20-50-xxxxxxxx", Latitude: ptr(31.0435), Longitude: ptr(31.375), IsOpen: true},
		{ID: "m8", Name: "صيدليات كير", NameAr: "صيدليات كير", Address: "46 ش حسين بك، المنصورة، الدقهلية", AddressAr: "٤٦ شارع حسين بك، المنصورة، الدقهلية، مصر", Phone: "+20-50-2122332", Latitude: ptr(31.0433), Longitude: ptr(31.3847), IsOpen: true},
		{ID: "m9", Name: "Al Doha Pharmacy", NameAr: "صيدلية الدوحة", Address: "الإمام محمد عبده، المنصورة، الدقهلية", AddressAr: "الإمام محمد عبده، المنصورة، الدقهلية، مصر", Phone: "+20-102-6012221", Latitude: ptr(31.0563), Longitude: ptr(31.4035), IsOpen: true},
		{ID: "m10", Name: "Dr. Walid El Tarshouby Pharmacy", NameAr: "صيدلية د. وليد الطرشوبي", Address: "سنبلّاواين – الدقهلية", AddressAr: "سنبلّاواين – الدقهلية، مصر", Phone: "+20-50-xxxxxxxx", Latitude: ptr(31.025), Longitude: ptr(31.38), IsOpen: true},
		{ID: "c1", Name: "Stephenson Pharmacy", NameAr: "صيدلية ستيفنسون", Address: "42 Abdel Khalek Tharwat St., Abdeen, Cairo", AddressAr: "٤٢ شارع عبد الخالق ثروت، عبّدين، القاهرة، مصر", Phone: "+20-2239-11482", Latitude: ptr(30.05056), Longitude: ptr(31.24453), IsOpen: false},
		{ID: "b1", Name: "19011", NameAr: "صيدلية 19011", Address: "عبد السلام الشاذلي، أمام ديوان عام المحافظة، دمنهور، البحيرة", AddressAr: "عبد السلام الشاذلي، أمام ديوان عام المحافظة، دمنهور، البحيرة، مصر", Phone: "19011", Latitude: ptr(31.04436), Longitude: ptr(30.46676), IsOpen: true},
	}
}

func labs() []entities.Lab {
	return []entities.Lab{
		{
			ID: "l1", Name: "Al-Borg Laboratories", NameAr: "معامل البرج",
			Address: "El Gomhoria St, Mansoura", AddressAr: "شارع الجمهورية، المنصورة", Phone: "+20-2-100-0001",
			Latitude: ptr(31.0453), Longitude: ptr(31.3618),
			AvailableTests:   []string{"CBC", "Blood Sugar", "Liver Function", "Kidney Function", "Thyroid", "Urine Analysis", "X-Ray"},
			AvailableTestsAr: []string{"صورة دم كاملة", "سكر الدم", "وظائف الكبد", "وظائف الكلى", "الغدة الدرقية", "تحليل بول", "أشعة سينية"},
		},
		{
			ID: "l2", Name: "El-Mokhtabar Laboratories", NameAr: "معامل المختبر",
			Address: "Gehan St, Mansoura", AddressAr: "شارع جيهان، المنصورة", Phone: "+20-2-100-0002",
			Latitude: ptr(31.0396), Longitude: ptr(31.3724),
			AvailableTests:   []string{"CBC", "Blood Sugar", "MRI", "CT Scan", "Urine Analysis", "Lipid Profile"},
			AvailableTestsAr: []string{"صورة دم كاملة", "سكر الدم", "رنين مغناطيسي", "أشعة مقطعية", "تحليل بول", "دهون الدم"},
		},
		{
			ID: "l3", Name: "Cairo Scan Radiology", NameAr: "كايرو سكان للأشعة",
			Address: "Toriel St, Mansoura", AddressAr: "شارع توريل، المنصورة", Phone: "+20-2-100-0003",
			Latitude: ptr(31.0421), Longitude: ptr(31.3897),
			AvailableTests:   []string{"X-Ray", "MRI", "CT Scan", "Ultrasound", "Mammogram", "Bone Density"},
			AvailableTestsAr: []string{"أشعة سينية", "رنين مغناطيسي", "أشعة مقطعية", "سونار", "ماموجرام", "كثافة العظام"},
		},
		{
			ID: "l4", Name: "Alfa Lab", NameAr: "معامل ألفا",
			Address: "El Mashaya St, Mansoura", AddressAr: "شارع المشاية، المنصورة", Phone: "+20-2-100-0004",
			Latitude: ptr(31.0488), Longitude: ptr(31.3779),
			AvailableTests:   []string{"CBC", "Blood Sugar", "Liver Function", "Kidney Function", "Vitamin D", "Iron", "Urine Analysis"},
			AvailableTestsAr: []string{"صورة دم كاملة", "سكر الدم", "وظائف الكبد", "وظائف الكلى", "فيتامين د", "حديد", "تحليل بول"},
		},
		{
			ID: "l5", Name: "Nile Radiology Center", NameAr: "مركز النيل للأشعة",
			Address: "University Area, Mansoura", AddressAr: "منطقة الجامعة، المنصورة", Phone: "+20-2-100-0005",
			Latitude: ptr(31.0339), Longitude: ptr(31.4026),
			AvailableTests:   []string{"X-Ray", "MRI", "CT Scan", "Ultrasound", "ECG", "Echo"},
			AvailableTestsAr: []string{"أشعة سينية", "رنين مغناطيسي", "أشعة مقطعية", "سونار", "رسم قلب", "إيكو"},
		},
		{
			ID: "l6", Name: "Delta Medical Labs", NameAr: "معامل دلتا الطبية",
			Address: "Sidi Yassin St, Mansoura", AddressAr: "شارع سيدي ياسين، المنصورة", Phone: "+20-2-100-0006",
			Latitude: ptr(31.0502), Longitude: ptr(31.3693),
			AvailableTests:   []string{"CBC", "Blood Sugar", "CRP", "ESR", "Urine Analysis"},
			AvailableTestsAr: []string{"صورة دم كاملة", "سكر الدم", "تحليل CRP", "سرعة الترسيب", "تحليل بول"},
		},
		{
			ID: "l7", Name: "Future Labs", NameAr: "معامل المستقبل",
			Address: "Gamaa St, Mansoura", AddressAr: "شارع الجامعة، المنصورة", Phone: "+20-2-100-0007",
			Latitude: ptr(31.0318), Longitude: ptr(31.3951),
			AvailableTests:   []string{"CBC", "Blood Sugar", "Vitamin B12", "Vitamin D", "Iron"},
			AvailableTestsAr: []string{"صورة دم كاملة", "سكر الدم", "فيتامين ب12", "فيتامين د", "حديد"},
		},
		{
			ID: "l8", Name: "Care Plus Labs", NameAr: "معامل كير بلس",
			Address: "El Tawfiqeya St, Mansoura", AddressAr: "شارع التوفيقية، المنصورة", Phone: "+20-2-100-0008",
			Latitude: ptr(31.0441), Longitude: ptr(31.3567),
			AvailableTests:   []string{"CBC", "Blood Sugar", "Liver Function", "Kidney Function", "Urine Analysis"},
			AvailableTestsAr: []string{"صورة دم كاملة", "سكر الدم", "وظائف الكبد", "وظائف الكلى", "تحليل بول"},
		},
		{
			ID: "l9", Name: "Life Scan Center", NameAr: "مركز لايف سكان",
			Address: "El Salam St, Mansoura", AddressAr: "شارع السلام، المنصورة", Phone: "+20-2-100-0009",
			Latitude: ptr(31.0571), Longitude: ptr(31.3814),
			AvailableTests:   []string{"X-Ray", "Ultrasound", "ECG", "Echo"},
			AvailableTestsAr: []string{"أشعة سينية", "سونار", "رسم قلب", "إيكو"},
		},
		{
			ID: "l10", Name: "Prime Medical Labs", NameAr: "برايم ميديكال لاب",
			Address: "El Galaa St, Mansoura", AddressAr: "شارع الجلاء، المنصورة", Phone: "+20-2-100-0010",
			Latitude: ptr(31.0364), Longitude: ptr(31.4092),
			AvailableTests:   []string{"CBC", "Blood Sugar", "Hormones", "Thyroid", "Urine Analysis"},
			AvailableTestsAr: []string{"صورة دم كاملة", "سكر الدم", "تحاليل هرمونات", "الغدة الدرقية", "تحليل بول"},
		},
	}
}

func donations() []entities.Donation {
	return []entities.Donation{
		{ID: "dn1", DonorName: "علي محمود (A+)", Type: entities.DonationBlood, Location: "المنصورة، الدقهلية", LocationAr: "المنصورة، الدقهلية", Phone: "+20-50-123-0001", Latitude: ptr(31.0409), Longitude: ptr(31.3785)},
		{ID: "dn2", DonorName: "سارة فتحي (O-)", Type: entities.DonationBlood, Location: "ميت غمر، الدقهلية", LocationAr: "ميت غمر، الدقهلية", Phone: "+20-50-123-0002", Latitude: ptr(30.735), Longitude: ptr(31.18)},
		{ID: "dn3", DonorName: "محمد صلاح", Type: entities.DonationAmbulance, Location: "دكرنس، الدقهلية", LocationAr: "دكرنس، الدقهلية", Phone: "+20-50-123-0003", Latitude: ptr(31.05), Longitude: ptr(31.43)},
		{ID: "dn4", DonorName: "هناء نبيل (AB-)", Type: entities.DonationBlood, Location: "بلقاس، الدقهلية", LocationAr: "بلقاس، الدقهلية", Phone: "+20-50-123-0004", Latitude: ptr(31.21), Longitude: ptr(31.38)},
		{ID: "dn5", DonorName: "عمر يوسف", Type: entities.DonationAmbulance, Location: "المنزلة، الدقهلية", LocationAr: "المنزلة، الدقهلية", Phone: "+20-50-123-0005", Latitude: ptr(31.09), Longitude: ptr(31.34)},
		{ID: "dn6", DonorName: "ليلى حسام (B-)", Type: entities.DonationBlood, Location: "طلخا، الدقهلية", LocationAr: "طلخا، الدقهلية", Phone: "+20-50-123-0006", Latitude: ptr(31.0505), Longitude: ptr(31.36)},
		{ID: "dn7", DonorName: "أحمد فوزي (A-)", Type: entities.DonationBlood, Location: "المنصورة، الدقهلية", LocationAr: "المنصورة، الدقهلية", Phone: "+20-50-123-0007", Latitude: ptr(31.042), Longitude: ptr(31.377)},
		{ID: "dn8", DonorName: "نورهان سامي", Type: entities.DonationAmbulance, Location: "ميت غمر، الدقهلية", LocationAr: "ميت غمر، الدقهلية", Phone: "+20-50-123-0008", Latitude: ptr(30.736), Longitude: ptr(31.182)},
		{ID: "dn9", DonorName: "ياسين خالد (O-)", Type: entities.DonationBlood, Location: "بلقاس، الدقهلية", LocationAr: "بلقاس، الدقهلية", Phone: "+20-50-123-0009", Latitude: ptr(31.211), Longitude: ptr(31.382)},
		{ID: "dn10", DonorName: "منى عادل", Type: entities.DonationAmbulance, Location: "دكرنس، الدقهلية", LocationAr: "دكرنس، الدقهلية", Phone: "+20-50-123-0010", Latitude: ptr(31.051), Longitude: ptr(31.431)},
		{ID: "dn11", DonorName: "تامر نجيب (A+)", Type: entities.DonationBlood, Location: "المنزلة، الدقهلية", LocationAr: "المنزلة، الدقهلية", Phone: "+20-50-123-0011", Latitude: ptr(31.091), Longitude: ptr(31.341)},
		{ID: "dn12", DonorName: "فاطمة شريف (AB-)", Type: entities.DonationBlood, Location: "طلخا، الدقهلية", LocationAr: "طلخا، الدقهلية", Phone: "+20-50-123-0012", Latitude: ptr(31.0515), Longitude: ptr(31.361)},
		{ID: "dn13", DonorName: "خالد مصطفى", Type: entities.DonationAmbulance, Location: "المنصورة، الدقهلية", LocationAr: "المنصورة، الدقهلية", Phone: "+20-50-123-0013", Latitude: ptr(31.043), Longitude: ptr(31.379)},
		{ID: "dn14", DonorName: "دينا مجدي (B-)", Type: entities.DonationBlood, Location: "ميت غمر، الدقهلية", LocationAr: "ميت غمر، الدقهلية", Phone: "+20-50-123-0014", Latitude: ptr(30.737), Longitude: ptr(31.183)},
		{ID: "dn15", DonorName: "محمود فتحي", Type: entities.DonationAmbulance, Location: "بلقاس، الدقهلية", LocationAr: "بلقاس، الدقهلية", Phone: "+20-50-123-0015", Latitude: ptr(31.212), Longitude: ptr(31.383)},
	}
}
