package doctors

// SeedDoctors returns the built-in directory used when no database is
// configured. It covers every specialist the triage engine can suggest.
func SeedDoctors() []*Doctor {
	return []*Doctor{
		{
			ID: "dm1", Name: "Dr. Amit Sharma", Email: "amit@hopcare.com",
			Specialization: "Cardiologist", Qualifications: "MBBS, MD, DM (Cardiology)",
			Experience: "18 Years", Hospital: "Fortis Escorts", Location: "New Delhi",
			Rating: 4.9, ReviewCount: 2100, ConsultationFee: "1500",
			Bio:          "Distinguished cardiologist known for his expertise in interventional cardiology.",
			Availability: []string{"09:00", "10:00", "11:00", "16:00"},
		},
		{
			ID: "dm2", Name: "Dr. Rahul Verma", Email: "rahul@hopcare.com",
			Specialization: "Dermatologist", Qualifications: "MBBS, MD (Dermatology)",
			Experience: "10 Years", Hospital: "Skin & Hair Clinic", Location: "Mumbai",
			Rating: 4.7, ReviewCount: 850, ConsultationFee: "1200",
			Bio:          "Specializes in clinical and aesthetic dermatology.",
			Availability: []string{"11:00", "13:00", "15:00", "17:00"},
		},
		{
			ID: "dm3", Name: "Dr. Rakesh Gupta", Email: "rakesh@hopcare.com",
			Specialization: "General Physician", Qualifications: "MBBS, MD (Internal Medicine)",
			Experience: "22 Years", Hospital: "Apollo Hospital", Location: "Bangalore",
			Rating: 4.8, ReviewCount: 3200, ConsultationFee: "800",
			Bio:          "Senior general physician managing chronic lifestyle diseases.",
			Availability: []string{"09:30", "12:00", "14:00", "18:00"},
		},
		{
			ID: "dm4", Name: "Dr. Sandeep Kumar", Email: "sandeep@hopcare.com",
			Specialization: "Neurologist", Qualifications: "MBBS, DM (Neurology)",
			Experience: "14 Years", Hospital: "Medanta - The Medicity", Location: "Gurugram",
			Rating: 4.9, ReviewCount: 1500, ConsultationFee: "1800",
			Bio:          "Leading neurologist specializing in stroke management and epilepsy.",
			Availability: []string{"10:00", "12:00", "14:00"},
		},
		{
			ID: "dm5", Name: "Dr. Anil Mehta", Email: "anil@hopcare.com",
			Specialization: "Orthopedist", Qualifications: "MBBS, MS (Orthopedics)",
			Experience: "16 Years", Hospital: "Max Super Speciality", Location: "New Delhi",
			Rating: 4.6, ReviewCount: 980, ConsultationFee: "1400",
			Bio:          "Orthopedic surgeon specializing in joint replacement and sports injuries.",
			Availability: []string{"09:00", "11:00", "15:00"},
		},
		{
			ID: "dm7", Name: "Dr. Rajesh Patel", Email: "rajesh@hopcare.com",
			Specialization: "Gastroenterologist", Qualifications: "MBBS, DM (Gastro)",
			Experience: "19 Years", Hospital: "Sterling Hospital", Location: "Ahmedabad",
			Rating: 4.7, ReviewCount: 1400, ConsultationFee: "1300",
			Bio:          "Expert in digestive disorders and advanced endoscopic procedures.",
			Availability: []string{"11:00", "13:00", "16:00"},
		},
		{
			ID: "dm8", Name: "Dr. Mohit Jain", Email: "mohit@hopcare.com",
			Specialization: "Psychiatrist", Qualifications: "MBBS, MD (Psychiatry)",
			Experience: "9 Years", Hospital: "Vimhans Nayati", Location: "New Delhi",
			Rating: 4.9, ReviewCount: 670, ConsultationFee: "1500",
			Bio:          "Treats anxiety, depression and stress-related disorders.",
			Availability: []string{"14:00", "16:00", "18:00"},
		},
		{
			ID: "dm10", Name: "Dr. Prakash Iyer", Email: "prakash@hopcare.com",
			Specialization: "ENT Specialist", Qualifications: "MBBS, MS (ENT)",
			Experience: "20 Years", Hospital: "Manipal Hospital", Location: "Bangalore",
			Rating: 4.6, ReviewCount: 900, ConsultationFee: "900",
			Bio:          "Senior ENT surgeon specializing in endoscopic sinus surgery.",
			Availability: []string{"09:00", "11:00", "14:00"},
		},
		{
			ID: "df6", Name: "Dr. Kavita Mehta", Email: "kavita@hopcare.com",
			Specialization: "Ophthalmologist", Qualifications: "MBBS, MS (Ophthalmology)",
			Experience: "14 Years", Hospital: "Sankara Nethralaya", Location: "Chennai",
			Rating: 4.7, ReviewCount: 1100, ConsultationFee: "1000",
			Bio:          "Specializes in cataract surgery and laser vision correction.",
			Availability: []string{"09:00", "11:00", "14:00"},
		},
		{
			ID: "df11", Name: "Dr. Meera Nair", Email: "meera@hopcare.com",
			Specialization: "Dentist", Qualifications: "BDS, MDS (Conservative Dentistry)",
			Experience: "8 Years", Hospital: "Smile Dental Care", Location: "Kochi",
			Rating: 4.8, ReviewCount: 430, ConsultationFee: "600",
			Bio:          "Focuses on restorative dentistry and preventive oral care.",
			Availability: []string{"10:00", "12:00", "15:00", "17:00"},
		},
	}
}

// SeedInMemory loads the built-in directory into the repository.
func SeedInMemory(repo *InMemoryRepository) {
	for _, doc := range SeedDoctors() {
		repo.Put(doc)
	}
}
