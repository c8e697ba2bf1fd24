package readings

// Schedule2025 is the community reading plan for 2025 ("Año 3").
var Schedule2025 = []DailyReading{
	{Month: 1, Day: 1, Reading: "1 Macabeos 1"},
	{Month: 1, Day: 17, Reading: "2 Macabeos 1"},
	{Month: 1, Day: 27, Reading: "2 Macabeos 13:14-36"},
	{Month: 1, Day: 28, Reading: "2 Macabeos 14:37-46"},
	{Month: 1, Day: 29, Reading: "Tobías 1"},
	{Month: 1, Day: 31, Reading: "Tobías 5"},

	{Month: 2, Day: 1, Reading: "Tobías 8"},
	{Month: 2, Day: 2, Reading: "Tobías 12"},
	{Month: 2, Day: 3, Reading: "Judit 1"},
	{Month: 2, Day: 11, Reading: "Baruc 1"},
	{Month: 2, Day: 14, Reading: "Sabiduría 1"},
	{Month: 2, Day: 23, Reading: "Eclesiástico 1"},

	{Month: 3, Day: 1, Reading: "Eclesiástico 19"},
	{Month: 3, Day: 17, Reading: "1 Juan 1"},
	{Month: 3, Day: 22, Reading: "1 Juan 2"},
	{Month: 3, Day: 27, Reading: "Juan 11:28-57"},
	{Month: 3, Day: 28, Reading: "Juan 1:29-51"},

	{Month: 4, Day: 1, Reading: "Juan 5:1-24"},
	{Month: 4, Day: 2, Reading: "Juan 5:25-47"},
	{Month: 4, Day: 3, Reading: "Juan 6:01-38"},
	{Month: 4, Day: 4, Reading: "Juan 6:39-71"},
	{Month: 4, Day: 5, Reading: "Juan 7:01-31"},
	{Month: 4, Day: 6, Reading: "Juan 7:32-53"},
	{Month: 4, Day: 7, Reading: "Juan 8:01-38"},
	{Month: 4, Day: 8, Reading: "Juan 8:39-59"},
	{Month: 4, Day: 10, Reading: "Juan 10:01-30"},
	{Month: 4, Day: 11, Reading: "Juan 10:31-42"},
	{Month: 4, Day: 12, Reading: "Juan 11:01-37"},
	{Month: 4, Day: 13, Reading: "Juan 11:38-57"},
	{Month: 4, Day: 15, Reading: "Juan 13:1-20"},
	{Month: 4, Day: 16, Reading: "Juan 13:21-38"},
	{Month: 4, Day: 19, Reading: "Juan 15"},
	{Month: 4, Day: 20, Reading: "Juan 16"},
	{Month: 4, Day: 22, Reading: "Juan 19:01-22"},
	{Month: 4, Day: 23, Reading: "Juan 19:23-42"},
	{Month: 4, Day: 25, Reading: "Marcos 1"},

	{Month: 5, Day: 1, Reading: "Marcos 6"},
	{Month: 5, Day: 4, Reading: "Marcos 9:1-29"},
	{Month: 5, Day: 5, Reading: "Marcos 9:30-50"},
	{Month: 5, Day: 6, Reading: "Marcos 10:01-34"},
	{Month: 5, Day: 7, Reading: "Marcos 10:35-52"},
	{Month: 5, Day: 9, Reading: "Marcos 12:01-27"},
	{Month: 5, Day: 10, Reading: "Marcos 12:28-44"},
	{Month: 5, Day: 11, Reading: "Marcos 13:1-13"},
	{Month: 5, Day: 12, Reading: "Marcos 13:14-37"},
	{Month: 5, Day: 13, Reading: "Marcos 14:01-42"},
	{Month: 5, Day: 14, Reading: "Marcos 14:43-72"},
	{Month: 5, Day: 15, Reading: "Marcos 15:1-15"},
	{Month: 5, Day: 16, Reading: "Marcos 15:16-32"},
	{Month: 5, Day: 17, Reading: "Marcos 15:33-47"},
	{Month: 5, Day: 19, Reading: "Gálatas 1"},
	{Month: 5, Day: 25, Reading: "Efesios 1"},
	{Month: 5, Day: 31, Reading: "Filipenses 1"},

	{Month: 6, Day: 2, Reading: "Filipenses 2"},
	{Month: 6, Day: 4, Reading: "Colosenses 1"},
	{Month: 6, Day: 8, Reading: "1 Tesalonicenses 1"},
	{Month: 6, Day: 11, Reading: "2 Tesalonicenses 1"},
	{Month: 6, Day: 13, Reading: "1 Timoteo 1"},
	{Month: 6, Day: 17, Reading: "2 Timoteo 1"},
	{Month: 6, Day: 18, Reading: "2 Timoteo 3"},
	{Month: 6, Day: 19, Reading: "Tito 1"},
	{Month: 6, Day: 21, Reading: "Filemón 1"},
	{Month: 6, Day: 22, Reading: "Lucas 1:1-25"},
	{Month: 6, Day: 23, Reading: "Lucas 1:26-80"},
	{Month: 6, Day: 25, Reading: "Lucas 2:22-52"},
	{Month: 6, Day: 27, Reading: "Lucas 4:1-30"},
	{Month: 6, Day: 28, Reading: "Lucas 4:31-44"},
	{Month: 6, Day: 29, Reading: "Lucas 5:1-26"},
	{Month: 6, Day: 30, Reading: "Lucas 5:27-39"},

	{Month: 7, Day: 1, Reading: "Lucas 6:1-26"},
	{Month: 7, Day: 2, Reading: "Lucas 6:27-49"},
	{Month: 7, Day: 3, Reading: "Lucas 7:1-23"},
	{Month: 7, Day: 4, Reading: "Lucas 7:24-50"},
	{Month: 7, Day: 5, Reading: "Lucas 7:36-50"},
	{Month: 7, Day: 6, Reading: "Lucas 8:1-25"},
	{Month: 7, Day: 7, Reading: "Lucas 8:26-56"},
	{Month: 7, Day: 8, Reading: "Lucas 9:1-27"},
	{Month: 7, Day: 9, Reading: "Lucas 9:28-43"},
	{Month: 7, Day: 10, Reading: "Lucas 10:1-16"},
	{Month: 7, Day: 11, Reading: "Lucas 10:17-42"},
	{Month: 7, Day: 13, Reading: "Lucas 11:29-54"},
	{Month: 7, Day: 17, Reading: "Lucas 13:10-35"},
	{Month: 7, Day: 19, Reading: "Lucas 14:25-35"},
	{Month: 7, Day: 21, Reading: "Lucas 17:1-10"},
	{Month: 7, Day: 24, Reading: "Lucas 18:1-30"},
	{Month: 7, Day: 26, Reading: "Lucas 19:29-48"},
	{Month: 7, Day: 27, Reading: "Lucas 20:1-19"},
	{Month: 7, Day: 28, Reading: "Lucas 20:19-47"},
	{Month: 7, Day: 29, Reading: "Lucas 21:1-11"},
	{Month: 7, Day: 30, Reading: "Lucas 21:12-38"},
	{Month: 7, Day: 31, Reading: "Lucas 22:1-38"},

	{Month: 8, Day: 1, Reading: "Lucas 22:39-71"},
	{Month: 8, Day: 2, Reading: "Lucas 23:1-25"},
	{Month: 8, Day: 3, Reading: "Lucas 23:26-56"},
	{Month: 8, Day: 5, Reading: "Hechos 1"},
	{Month: 8, Day: 7, Reading: "Hechos 4"},

	{Month: 9, Day: 1, Reading: "Romanos 4"},
	{Month: 9, Day: 3, Reading: "Romanos 9:1-33"},
	{Month: 9, Day: 7, Reading: "Romanos 10"},
	{Month: 9, Day: 8, Reading: "Romanos 11"},
	{Month: 9, Day: 12, Reading: "Romanos 15:1-13"},
	{Month: 9, Day: 13, Reading: "Romanos 15:14-27"},
	{Month: 9, Day: 14, Reading: "Mateo 1"},

	{Month: 10, Day: 1, Reading: "Mateo 9:2-38"},
	{Month: 10, Day: 7, Reading: "1 Corintios 1"},
	{Month: 10, Day: 13, Reading: "2 Corintios 1"},
	{Month: 10, Day: 16, Reading: "2 Corintios 12"},
	{Month: 10, Day: 26, Reading: "Hebreos 1"},

	{Month: 11, Day: 1, Reading: "Hebreos 8"},
	{Month: 11, Day: 7, Reading: "Santiago 1"},
	{Month: 11, Day: 12, Reading: "1 Pedro 1"},
	{Month: 11, Day: 17, Reading: "2 Pedro 1"},
	{Month: 11, Day: 20, Reading: "1 Juan 1"},
	{Month: 11, Day: 28, Reading: "Apocalipsis 1"},

	{Month: 12, Day: 1, Reading: "Apocalipsis 4"},
	{Month: 12, Day: 2, Reading: "Apocalipsis 5-6"},
	{Month: 12, Day: 3, Reading: "Apocalipsis 7-8"},
	{Month: 12, Day: 4, Reading: "Apocalipsis 9-10"},
	{Month: 12, Day: 5, Reading: "Apocalipsis 11-12"},
	{Month: 12, Day: 6, Reading: "Apocalipsis 13-14"},
	{Month: 12, Day: 7, Reading: "Apocalipsis 15-16"},
	{Month: 12, Day: 8, Reading: "Apocalipsis 17-18"},
	{Month: 12, Day: 9, Reading: "Apocalipsis 19-20"},
	{Month: 12, Day: 10, Reading: "Apocalipsis 21-22"},
	{Month: 12, Day: 11, Reading: "Juan 1"},
	{Month: 12, Day: 12, Reading: "Juan 2"},
	{Month: 12, Day: 13, Reading: "Juan 3"},
	{Month: 12, Day: 14, Reading: "Juan 4"},
	{Month: 12, Day: 15, Reading: "Juan 5"},
	{Month: 12, Day: 16, Reading: "Juan 6"},
	{Month: 12, Day: 17, Reading: "Juan 7"},
	{Month: 12, Day: 18, Reading: "Juan 8"},
	{Month: 12, Day: 19, Reading: "Juan 9"},
	{Month: 12, Day: 20, Reading: "Juan 10"},
	{Month: 12, Day: 21, Reading: "Juan 11"},
	{Month: 12, Day: 22, Reading: "Juan 12"},
	{Month: 12, Day: 23, Reading: "Juan 13"},
	{Month: 12, Day: 24, Reading: "Juan 14"},
	{Month: 12, Day: 25, Reading: "Juan 15"},
	{Month: 12, Day: 26, Reading: "Juan 16"},
	{Month: 12, Day: 27, Reading: "Juan 17"},
	{Month: 12, Day: 28, Reading: "Juan 18"},
	{Month: 12, Day: 29, Reading: "Juan 19"},
	{Month: 12, Day: 30, Reading: "Juan 20"},
	{Month: 12, Day: 31, Reading: "Juan 21"},
}
