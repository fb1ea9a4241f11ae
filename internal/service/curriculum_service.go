package service

import (
	"pylearn_tracker/internal/model"
	"pylearn_tracker/internal/util"
)

// CurriculumService 静态课程表，只读
type CurriculumService struct {
	weeks    []model.CurriculumWeek
	tools    []string
	dayIndex map[int]model.DayInfo
}

func NewCurriculumService() *CurriculumService {
	s := &CurriculumService{
		weeks: curriculumWeeks,
		tools: additionalTools,
	}

	s.dayIndex = make(map[int]model.DayInfo, DayCountTotal)
	for _, week := range s.weeks {
		for _, day := range week.Days {
			s.dayIndex[day.Day] = model.DayInfo{
				Day:       day.Day,
				Week:      week.Week,
				WeekTitle: week.Title,
				Topic:     day.Topic,
				Practice:  day.Practice,
				Resources: day.Resources,
			}
		}
	}

	return s
}

const (
	DayCountTotal  = 21
	WeekCountTotal = 3
	DaysPerWeek    = 7
)

func (s *CurriculumService) DayCount() int {
	return DayCountTotal
}

func (s *CurriculumService) WeekCount() int {
	return WeekCountTotal
}

// ValidDay 天数是否落在课程范围内
func (s *CurriculumService) ValidDay(day int) bool {
	return day >= 1 && day <= DayCountTotal
}

func (s *CurriculumService) Weeks() []model.CurriculumWeek {
	return s.weeks
}

// DayInfo 返回某天的课程信息及所属周
func (s *CurriculumService) DayInfo(day int) (*model.DayInfo, error) {
	if !s.ValidDay(day) {
		return nil, util.ErrInvalidDay
	}
	info, ok := s.dayIndex[day]
	if !ok {
		return nil, util.ErrDayNotFound
	}
	return &info, nil
}

// AdditionalTools 推荐的辅助学习工具
func (s *CurriculumService) AdditionalTools() []string {
	return s.tools
}

var additionalTools = []string{
	"Online Coding Editors: Replit, Jupyter Notebook, Google Colab",
	"Practice & Challenges: HackerRank, LeetCode",
	"Debugging & Visualization: Python Tutor",
}

func res(name string) model.CurriculumResource {
	return model.CurriculumResource{Name: name}
}

func link(name, url string) model.CurriculumResource {
	return model.CurriculumResource{Name: name, URL: url}
}

var curriculumWeeks = []model.CurriculumWeek{
	{
		Week:  1,
		Title: "Python Basics",
		Days: []model.CurriculumDay{
			{
				Day:       1,
				Topic:     "Variables & Data Types",
				Resources: []model.CurriculumResource{link("W3Schools", "https://www.w3schools.com/python/"), res("Mosh's Video")},
				Practice:  "Write a script to store and print your name, age, and favorite number.",
			},
			{
				Day:       2,
				Topic:     "Operators & Expressions",
				Resources: []model.CurriculumResource{link("Programiz", "https://www.programiz.com/python-programming"), res("Corey Schafer's Video")},
				Practice:  "Write a calculator that adds, subtracts, multiplies, and divides two numbers.",
			},
			{
				Day:       3,
				Topic:     "If Statements & Conditions",
				Resources: []model.CurriculumResource{link("Real Python", "https://realpython.com/"), res("freeCodeCamp Video")},
				Practice:  "Create a program that checks if a number is positive, negative, or zero.",
			},
			{
				Day:       4,
				Topic:     "Loops (for, while)",
				Resources: []model.CurriculumResource{link("W3Schools Loops", "https://www.w3schools.com/python/python_for_loops.asp"), res("CS Dojo Video")},
				Practice:  "Print numbers from 1-10 using a loop. Print even numbers only.",
			},
			{
				Day:       5,
				Topic:     "Functions",
				Resources: []model.CurriculumResource{link("Python Functions (Programiz)", "https://www.programiz.com/python-programming/function"), res("Mosh's Video")},
				Practice:  "Write a function that takes a number and returns its square.",
			},
			{
				Day:       6,
				Topic:     "Lists & Strings",
				Resources: []model.CurriculumResource{link("W3Schools Lists", "https://www.w3schools.com/python/python_lists.asp"), res("Corey Schafer's Video")},
				Practice:  "Reverse a string and find the largest number in a list.",
			},
			{
				Day:       7,
				Topic:     "Mini Project (Basics)",
				Resources: []model.CurriculumResource{res("Use Replit to code")},
				Practice:  "Build a basic calculator or a number guessing game.",
			},
		},
	},
	{
		Week:  2,
		Title: "Intermediate Python",
		Days: []model.CurriculumDay{
			{
				Day:       8,
				Topic:     "Dictionaries & Sets",
				Resources: []model.CurriculumResource{link("W3Schools Dictionaries", "https://www.w3schools.com/python/python_dictionaries.asp"), res("Corey Schafer Video")},
				Practice:  "Count word frequency in a sentence using a dictionary.",
			},
			{
				Day:       9,
				Topic:     "File Handling",
				Resources: []model.CurriculumResource{link("Programiz", "https://www.programiz.com/python-programming/file-operation"), res("Mosh's Video")},
				Practice:  "Read a file and count how many lines it has.",
			},
			{
				Day:       10,
				Topic:     "Error Handling (try-except)",
				Resources: []model.CurriculumResource{link("Real Python", "https://realpython.com/python-exceptions/"), res("freeCodeCamp Video")},
				Practice:  "Create a program that handles division by zero errors.",
			},
			{
				Day:       11,
				Topic:     "Modules (math, random)",
				Resources: []model.CurriculumResource{res("Python Modules Guide"), res("Mosh's Video")},
				Practice:  "Generate a random password using random module.",
			},
			{
				Day:       12,
				Topic:     "OOP Basics (Classes & Objects)",
				Resources: []model.CurriculumResource{link("Real Python", "https://realpython.com/python3-object-oriented-programming/"), res("Mosh's Video")},
				Practice:  "Create a Car class with attributes like brand and speed.",
			},
			{
				Day:       13,
				Topic:     "APIs & JSON",
				Resources: []model.CurriculumResource{link("Requests Library (Real Python)", "https://realpython.com/python-requests/"), res("Corey Schafer Video")},
				Practice:  "Fetch weather data from an API and display it.",
			},
			{
				Day:       14,
				Topic:     "Mini Project",
				Resources: []model.CurriculumResource{res("Use Replit or Jupyter Notebook")},
				Practice:  "Build a To-Do List App or Weather App using API.",
			},
		},
	},
	{
		Week:  3,
		Title: "Advanced & Final Project",
		Days: []model.CurriculumDay{
			{
				Day:       15,
				Topic:     "Recap & Debugging",
				Resources: []model.CurriculumResource{res("Use Pythontutor to visualize code execution")},
				Practice:  "Debug old programs and improve efficiency.",
			},
			{
				Day:       16,
				Topic:     "Data Structures (Stacks, Queues)",
				Resources: []model.CurriculumResource{link("Real Python", "https://realpython.com/queue-in-python/")},
				Practice:  "Implement a simple stack and queue in Python.",
			},
			{
				Day:       17,
				Topic:     "Algorithms (Sorting & Searching)",
				Resources: []model.CurriculumResource{link("Khan Academy", "https://www.khanacademy.org/computing/computer-science/algorithms")},
				Practice:  "Implement Bubble Sort and Binary Search.",
			},
			{
				Day:       18,
				Topic:     "Python Libraries (pandas, matplotlib)",
				Resources: []model.CurriculumResource{link("Pandas Docs", "https://pandas.pydata.org/docs/"), res("Matplotlib Tutorial")},
				Practice:  "Read a CSV file using Pandas and create a basic graph.",
			},
			{
				Day:       19,
				Topic:     "Final Project Brainstorming",
				Resources: []model.CurriculumResource{res("Use Google Colab")},
				Practice:  "Plan a final project (Choose from ideas below).",
			},
			{
				Day:       20,
				Topic:     "Final Project (Day 1)",
				Resources: []model.CurriculumResource{res("Use Replit or Jupyter Notebook")},
				Practice:  "Build a project like: Password Manager, Budget Tracker, or Simple Game.",
			},
			{
				Day:       21,
				Topic:     "Final Project (Day 2)",
				Resources: []model.CurriculumResource{res("Use Replit or Jupyter Notebook")},
				Practice:  "Complete your final project and showcase it.",
			},
		},
	},
}
